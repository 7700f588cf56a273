package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ja-he/chordmap/internal/config"
	"github.com/ja-he/chordmap/internal/input"
	"github.com/ja-he/chordmap/internal/keymap"
)

// ResolveCommand is the command `resolve`, which shows what a combination is
// bound to in a window.
type ResolveCommand struct {
	ConfigFile string `short:"c" long:"config" description:"the config file to use (default: ${CHORDMAP_HOME}/config.yaml)" value-name:"<file>"`
	Window     string `short:"w" long:"window" required:"true" description:"the window whose keymap to use" value-name:"<name>"`

	Args struct {
		Combination string `positional-arg-name:"combination" description:"e.g. \"Ctrl + Shift + X\""`
	} `positional-args:"true" required:"true"`
}

// Execute executes the resolve command.
func (command *ResolveCommand) Execute(args []string) error {
	configData, err := loadConfig(command.ConfigFile, config.Dark)
	if err != nil {
		return fmt.Errorf("can't parse config data (%w)", err)
	}
	return resolve(configData, command.Window, command.Args.Combination, os.Stdout)
}

func resolve(configData config.Config, window string, text string, out io.Writer) error {
	combination, err := input.ParseCombination(text)
	if err != nil {
		return fmt.Errorf("Invalid key combination provided: %w (expected format: %s)", err, keymap.FormatHint)
	}

	windowKeymap, err := configData.WindowKeymap(window)
	if err != nil {
		return err
	}
	km, _ := keymap.Compile(windowKeymap)

	binding, ok := km.LookupCombination(combination)
	if !ok {
		fmt.Fprintf(out, "%s is unbound in '%s'\n", combination, window)
		return nil
	}
	fmt.Fprintf(out, "%s -> %s (inhibit: %t)\n", combination, binding.Command, binding.Inhibit)
	return nil
}
