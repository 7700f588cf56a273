package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/chordmap/internal/styling"
)

// ScreenHandler allows rendering to a terminal (via tcell.Screen).
// It also handles synchronization (e.g. on resize) when prompted accordingly.
type ScreenHandler struct {
	screen    tcell.Screen
	needsSync bool
}

// NewTUIScreenHandler initializes a new terminal screen and returns a handler
// for it.
func NewTUIScreenHandler() (*ScreenHandler, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("could not create screen (%w)", err)
	}
	return NewScreenHandler(screen)
}

// NewScreenHandler initializes the given screen and returns a handler for it.
func NewScreenHandler(screen tcell.Screen) (*ScreenHandler, error) {
	err := screen.Init()
	if err != nil {
		return nil, fmt.Errorf("could not initialize screen (%w)", err)
	}

	defStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	screen.SetStyle(defStyle)
	screen.Clear()

	return &ScreenHandler{screen: screen}, nil
}

// PollEvent waits for the next event of the underlying screen.
// Returns nil once the screen is finalized.
func (s *ScreenHandler) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Fini finalizes the screen, e.g., for clean program shutdown.
func (s *ScreenHandler) Fini() {
	s.screen.Fini()
}

// NeedsSync registers that a synchronization of the underlying screen is
// necessary.
// This is necessary on resize events.
func (s *ScreenHandler) NeedsSync() {
	s.needsSync = true
}

// Dimensions returns the current dimensions of the underlying screen.
func (s *ScreenHandler) Dimensions() (x, y, w, h int) {
	w, h = s.screen.Size()
	return 0, 0, w, h
}

// Clear clears the underlying screen.
// If this is not done before drawing new things, old contents that are not
// overwritten will remain visible on the next Show.
func (s *ScreenHandler) Clear() {
	s.screen.Clear()
}

// Show shows the drawn contents, taking the necessity for synchronization into
// account.
func (s *ScreenHandler) Show() {
	if s.needsSync {
		s.needsSync = false
		s.screen.Sync()
	} else {
		s.screen.Show()
	}
}

// DrawText draws given text, within given dimensions in the given style.
func (s *ScreenHandler) DrawText(x, y, w, h int, style styling.DrawStyling, text string) {
	if w <= 0 || h <= 0 {
		return
	}

	tcellStyle := style.AsTcell()

	col := x
	row := y
	for _, r := range text {
		s.screen.SetContent(col, row, r, nil, tcellStyle)
		col++
		if col >= x+w {
			row++
			col = x
		}
		if row >= y+h {
			return
		}
	}
}

// DrawBox draws a box of the given dimensions in the given style's background
// color. Note that this overwrites contents within the dimensions.
func (s *ScreenHandler) DrawBox(x, y, w, h int, style styling.DrawStyling) {
	tcellStyle := style.AsTcell()
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.screen.SetContent(col, row, ' ', nil, tcellStyle)
		}
	}
}
