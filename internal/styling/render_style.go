package styling

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/chordmap/internal/config"
)

// DrawStyling is style information used for rendering text.
type DrawStyling struct {
	fg colorful.Color
	bg colorful.Color

	bold, italic, underlined bool
}

// AsTcell returns this styling as a tcell.Style.
func (s DrawStyling) AsTcell() tcell.Style {
	fg := colorfulColorToTcellColor(s.fg)
	bg := colorfulColorToTcellColor(s.bg)

	style := tcell.StyleDefault.Foreground(fg).Background(bg)
	style = style.Bold(s.bold).Italic(s.italic).Underline(s.underlined)

	return style
}

// Bolded returns a copy of this styling which is guaranteed to be bolded.
func (s DrawStyling) Bolded() DrawStyling {
	s.bold = true
	return s
}

// ToString returns a string representation of this styling, e.g., for logging
// purposes.
func (s DrawStyling) ToString() string {
	return fmt.Sprintf(
		"[fg:'%s' bg:'%s' (b:%t i:%t u:%t)]",
		s.fg.Hex(),
		s.bg.Hex(),
		s.bold,
		s.italic,
		s.underlined,
	)
}

// StyleFromHex constructs and returns a styling from two hexadecimally
// formatted strings for the foreground and background color.
// Strings have to have hexadecimal or HTML color notation and lead with a '#'.
// Invalid colors fall back to white (foreground) and black (background).
//
// Examples:
//   - '#ff0000'
//   - '#fff'
//   - '#BEEF42'
func StyleFromHex(fg, bg string) DrawStyling {
	return DrawStyling{
		fg: colorfulColorFromHexString(fg, colorful.Color{R: 1, G: 1, B: 1}),
		bg: colorfulColorFromHexString(bg, colorful.Color{}),
	}
}

// StyleFromConfig constructs a styling from its configuration.
func StyleFromConfig(c config.Styling) DrawStyling {
	s := StyleFromHex(c.Fg, c.Bg)
	if c.Style != nil {
		s.bold = c.Style.Bold
		s.italic = c.Style.Italic
		s.underlined = c.Style.Underlined
	}
	return s
}

func colorfulColorFromHexString(hex string, fallback colorful.Color) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return c
}

func colorfulColorToTcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
