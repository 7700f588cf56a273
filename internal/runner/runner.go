// Package runner runs the commands bound to key combinations.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout is the budget a command gets before it is killed.
const DefaultTimeout = 200 * time.Millisecond

// ErrTimeout is returned by Run when a command exceeded its budget.
var ErrTimeout = errors.New("command timed out")

// Dispatcher triggers commands without waiting for them.
type Dispatcher interface {
	Dispatch(command string)
}

// Shell runs commands through a shell.
// The command string is passed verbatim, without arguments.
type Shell struct {
	Shell   string
	Timeout time.Duration
	Logger  zerolog.Logger
}

// NewShell returns a pointer to a new Shell using 'sh' and the default timeout.
func NewShell(logger zerolog.Logger) *Shell {
	return &Shell{
		Shell:   "sh",
		Timeout: DefaultTimeout,
		Logger:  logger,
	}
}

// Run runs the command and waits for it, at most for the shell's timeout.
func (s *Shell) Run(ctx context.Context, command string) error {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.Shell, "-c", command)
	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("'%s' after %s: %w", command, s.Timeout, ErrTimeout)
	}
	if err != nil {
		return fmt.Errorf("'%s': %w", command, err)
	}
	return nil
}

// Dispatch runs the command in the background.
// Failures are logged and otherwise dropped.
func (s *Shell) Dispatch(command string) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.Logger.Error().Interface("panic", r).Str("command", command).Msg("command runner panicked")
			}
		}()

		start := time.Now()
		err := s.Run(context.Background(), command)
		if err != nil {
			s.Logger.Warn().Err(err).Str("command", command).Msg("command failed")
			return
		}
		s.Logger.Debug().Str("command", command).Dur("took", time.Since(start)).Msg("command ran")
	}()
}
