package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/chordmap/internal/config"
	"github.com/ja-he/chordmap/internal/keymap"
)

// CheckCommand is the command `check`, which compiles the configured keymaps
// and reports invalid bindings.
type CheckCommand struct {
	ConfigFile string `short:"c" long:"config" description:"the config file to check (default: ${CHORDMAP_HOME}/config.yaml)" value-name:"<file>"`
	Window     string `short:"w" long:"window" description:"only check the keymap of this window" value-name:"<name>"`
}

// Execute executes the check command.
func (command *CheckCommand) Execute(args []string) error {
	configData, err := loadConfig(command.ConfigFile, config.Dark)
	if err != nil {
		return fmt.Errorf("can't parse config data (%w)", err)
	}

	windows := configData.WindowNames()
	if command.Window != "" {
		windows = []string{command.Window}
	}

	invalid, err := checkWindows(configData, windows, os.Stdout)
	if err != nil {
		return err
	}
	if invalid > 0 {
		return fmt.Errorf("%d invalid binding(s)", invalid)
	}
	return nil
}

// checkWindows compiles the keymaps of the given windows, writing diagnostics
// and the compiled bindings to out. Returns the number of diagnostics.
func checkWindows(configData config.Config, windows []string, out io.Writer) (int, error) {
	invalid := 0
	for _, name := range windows {
		windowKeymap, err := configData.WindowKeymap(name)
		if err != nil {
			return invalid, err
		}

		km, diagnostics := keymap.Compile(windowKeymap)
		invalid += len(diagnostics)

		fmt.Fprintf(out, "%s (%d bindings, %d invalid)\n", name, km.Len(), len(diagnostics))
		for _, d := range diagnostics {
			log.Debug().Str("window", name).Str("span", d.Span.String()).Err(d.Err).Msg("invalid binding")
			fmt.Fprintf(out, "  ! %s\n", d.Error())
		}
		for _, entry := range km.Entries() {
			fmt.Fprintf(out, "  %-20s inhibit:%-5t  %s\n", entry.Combination.String(), entry.Binding.Inhibit, entry.Binding.Command)
		}
	}
	return invalid, nil
}
