package keymap

import "fmt"

// FormatHint is the example shown to users alongside invalid combinations.
const FormatHint = `"Ctrl + Shift + X"`

// Diagnostic reports a bind that could not be compiled.
type Diagnostic struct {
	Span Span
	Err  error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf(
		"%s: Invalid key combination provided: %s (expected format: %s, case-insensitive, whitespace-tolerant)",
		d.Span, d.Err.Error(), FormatHint,
	)
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}
