package cli

import (
	"fmt"
	"io"
	"os"
)

// Set at build time, e.g.
// -ldflags "-X github.com/ja-he/chordmap/internal/control/cli.version=v1.0.0".
var (
	version = "development"
	hash    = "unknown"
)

// VersionCommand is the command `version`, which prints the chordmap build
// version and the commit it was built from.
type VersionCommand struct{}

// Execute executes the version command.
func (command *VersionCommand) Execute(args []string) error {
	return writeVersion(os.Stdout)
}

func writeVersion(out io.Writer) error {
	_, err := fmt.Fprintf(out, "chordmap %s (%s)\n", version, hash)
	return err
}
