package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/chordmap/internal/config"
	"github.com/ja-he/chordmap/internal/control"
	"github.com/ja-he/chordmap/internal/keymap"
	"github.com/ja-he/chordmap/internal/potatolog"
	"github.com/ja-he/chordmap/internal/runner"
	"github.com/ja-he/chordmap/internal/styling"
	"github.com/ja-he/chordmap/internal/tui"
)

// RunCommand is the command `run`, which attaches a window's keymap to the
// terminal and runs bound commands on key presses.
type RunCommand struct {
	ConfigFile    string `short:"c" long:"config" description:"the config file to use (default: ${CHORDMAP_HOME}/config.yaml)" value-name:"<file>"`
	Window        string `short:"w" long:"window" required:"true" description:"the window whose keymap to attach" value-name:"<name>"`
	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs are only shown in the window)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
}

// Execute executes the run command.
func (command *RunCommand) Execute(args []string) error {
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	memoryLog := potatolog.NewMemoryLogReaderWriter(256)
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			stderrLogger.Fatal().Err(err).Str("file", command.LogOutputFile).Msg("could not open file for logging")
		}
		defer file.Close()
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, memoryLog)
	} else {
		logWriter = memoryLog
	}
	windowLogger := zerolog.New(logWriter).With().Timestamp().Str("window", command.Window).Logger()

	theme := config.Dark
	if command.Theme == "light" {
		theme = config.Light
	}

	configData, err := loadConfig(command.ConfigFile, theme)
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("can't parse config data")
	}
	windowKeymap, err := configData.WindowKeymap(command.Window)
	if err != nil {
		return err
	}

	km, diagnostics := keymap.Compile(windowKeymap)
	for _, d := range diagnostics {
		windowLogger.Warn().Str("span", d.Span.String()).Err(d.Err).Msg(d.Error())
	}
	windowLogger.Info().Int("bindings", km.Len()).Msg("keymap compiled")

	screen, err := tui.NewTUIScreenHandler()
	if err != nil {
		return err
	}
	defer screen.Fini()

	// the terminal belongs to the window now
	log.Logger = windowLogger

	stylesheet := styling.NewStylesheetFromConfig(configData.Stylesheet)
	window := tui.NewWindow(command.Window, screen, *stylesheet, memoryLog)
	window.Attach(control.NewKeyHandler(km, runner.NewShell(windowLogger), windowLogger))
	window.Run()

	return nil
}
