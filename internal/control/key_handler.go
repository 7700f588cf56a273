package control

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/ja-he/chordmap/internal/input"
	"github.com/ja-he/chordmap/internal/keymap"
	"github.com/ja-he/chordmap/internal/runner"
)

// KeyHandler resolves key presses of one window against its compiled keymap
// and triggers the bound commands.
// It is what gets attached to a window; the keymap is only read.
type KeyHandler struct {
	keymap     *keymap.Keymap
	dispatcher runner.Dispatcher
	log        zerolog.Logger
}

// NewKeyHandler returns a pointer to a new KeyHandler for the given compiled
// keymap, dispatching matched commands to the given dispatcher.
func NewKeyHandler(km *keymap.Keymap, dispatcher runner.Dispatcher, logger zerolog.Logger) *KeyHandler {
	return &KeyHandler{
		keymap:     km,
		dispatcher: dispatcher,
		log:        logger,
	}
}

// HandleKey resolves the key event, dispatches the bound command if any and
// returns whether the event must not propagate any further.
// Unbound keys never inhibit.
func (h *KeyHandler) HandleKey(e *tcell.EventKey) (inhibit bool) {
	combination := input.CombinationFromEvent(e.Modifiers(), e.Key(), e.Rune())
	binding, ok := h.keymap.LookupCombination(combination)
	if !ok {
		h.log.Trace().Str("combination", combination.String()).Msg("unbound")
		return false
	}

	h.log.Debug().
		Str("combination", combination.String()).
		Str("command", binding.Command).
		Bool("inhibit", binding.Inhibit).
		Msg("matched binding")
	h.dispatcher.Dispatch(binding.Command)
	return binding.Inhibit
}
