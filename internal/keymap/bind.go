package keymap

import "fmt"

// Span locates a piece of configuration text. It is only used for diagnostics.
type Span struct {
	Source string
	Line   int
	Column int
}

// String renders the span as "source:line:column".
func (s Span) String() string {
	return fmt.Sprintf("%s:%d:%d", s.Source, s.Line, s.Column)
}

// Bind is a single declared binding of a key combination to a command.
type Bind struct {
	// Inhibit overrides the keymap-level default if set.
	Inhibit *bool

	Combination string
	Span        Span

	// Cmd is handed verbatim to the command runner.
	Cmd string
}

// WindowKeymap is the declared keymap of a window.
type WindowKeymap struct {
	Binds []Bind

	// Inhibit is the default for binds that do not set their own.
	Inhibit *bool
}

// effectiveInhibit resolves a bind's inhibit flag: its own, else the keymap
// default, else false.
func (w *WindowKeymap) effectiveInhibit(b *Bind) bool {
	switch {
	case b.Inhibit != nil:
		return *b.Inhibit
	case w.Inhibit != nil:
		return *w.Inhibit
	default:
		return false
	}
}
