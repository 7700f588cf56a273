// Package tui is the terminal side of chordmap: it owns the screen, polls key
// events and offers them to attached key listeners.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/chordmap/internal/input"
	"github.com/ja-he/chordmap/internal/potatolog"
	"github.com/ja-he/chordmap/internal/styling"
)

// KeyListener is offered every key press of a window it is attached to.
// HandleKey returns whether the event must not propagate any further.
type KeyListener interface {
	HandleKey(e *tcell.EventKey) (inhibit bool)
}

// Window is a single terminal window with attached key listeners.
//
// Key events go to the listeners in attachment order until one of them
// inhibits. Events that are not inhibited reach the window itself, which
// shows the last key and quits on Esc or Ctrl+C.
type Window struct {
	name       string
	screen     *ScreenHandler
	stylesheet styling.Stylesheet
	log        potatolog.LogReader

	listeners []KeyListener

	lastKey       string
	lastInhibited bool
}

// NewWindow returns a pointer to a new window drawing to the given screen.
func NewWindow(name string, screen *ScreenHandler, stylesheet styling.Stylesheet, log potatolog.LogReader) *Window {
	return &Window{
		name:       name,
		screen:     screen,
		stylesheet: stylesheet,
		log:        log,
	}
}

// Attach registers a key listener with this window.
func (w *Window) Attach(l KeyListener) {
	w.listeners = append(w.listeners, l)
}

// Run draws and processes events until the window is quit.
func (w *Window) Run() {
	w.Draw()
	for {
		ev := w.screen.PollEvent()
		if ev == nil {
			return
		}
		if quit := w.ProcessEvent(ev); quit {
			return
		}
		w.Draw()
	}
}

// ProcessEvent processes a single event and returns whether the window should
// quit.
func (w *Window) ProcessEvent(ev tcell.Event) (quit bool) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		w.screen.NeedsSync()
		return false

	case *tcell.EventKey:
		combination := input.CombinationFromEvent(e.Modifiers(), e.Key(), e.Rune())
		w.lastKey = combination.String()
		w.lastInhibited = false
		for _, l := range w.listeners {
			if l.HandleKey(e) {
				w.lastInhibited = true
				return false
			}
		}
		return e.Key() == tcell.KeyESC || e.Key() == tcell.KeyCtrlC

	default:
		return false
	}
}

// LastKey returns the last key pressed and whether it was inhibited.
func (w *Window) LastKey() (string, bool) {
	return w.lastKey, w.lastInhibited
}

// Draw renders the window.
func (w *Window) Draw() {
	x, y, width, height := w.screen.Dimensions()
	w.screen.Clear()
	w.screen.DrawBox(x, y, width, height, w.stylesheet.Normal)

	w.screen.DrawBox(x, y, width, 1, w.stylesheet.Status)
	w.screen.DrawText(x, y, width, 1, w.stylesheet.Status.Bolded(), fmt.Sprintf(" %s  (Esc/Ctrl+C to quit)", w.name))

	if w.lastKey != "" {
		keyStyle := w.stylesheet.Normal
		status := "propagated"
		if w.lastInhibited {
			keyStyle = w.stylesheet.Match
			status = "inhibited"
		}
		w.screen.DrawText(x+1, y+2, width-2, 1, keyStyle, fmt.Sprintf("%s (%s)", w.lastKey, status))
	}

	logHeight := height - 4
	if w.log != nil && logHeight > 0 {
		for i, entry := range w.log.Latest(logHeight) {
			w.screen.DrawText(x+1, y+4+i, width-2, 1, w.stylesheet.Log, potatolog.Summarize(entry))
		}
	}

	w.screen.Show()
}
