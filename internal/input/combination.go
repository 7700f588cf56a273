package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// ErrMissingKey is returned for combinations without a key name.
var ErrMissingKey = errors.New("missing key")

// UnknownKeyError is returned when the key segment of a combination is not a
// known key name.
type UnknownKeyError struct {
	Name string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key '%s'", e.Name)
}

// UnknownModifierError is returned when a non-key segment of a combination is
// not a known modifier alias.
type UnknownModifierError struct {
	Text string
}

func (e *UnknownModifierError) Error() string {
	return fmt.Sprintf("unknown modifier '%s'", e.Text)
}

// Combination is a key chord: a set of modifiers held while pressing a key.
// It is comparable and can be used as a map key.
type Combination struct {
	Mods Modifier
	Key  KeyID
}

// ParseCombination parses a combination such as "Ctrl + Shift + X".
// The text is split on '+', the last segment names the key and all others name
// modifiers. Names are case-insensitive and surrounding whitespace is ignored.
func ParseCombination(text string) (Combination, error) {
	segments := strings.Split(text, "+")

	keyName := strings.TrimSpace(segments[len(segments)-1])
	if keyName == "" {
		return Combination{}, ErrMissingKey
	}
	key := KeyFromName(keyName)
	if key == VoidKey {
		return Combination{}, &UnknownKeyError{Name: keyName}
	}

	var mods Modifier
	for _, segment := range segments[:len(segments)-1] {
		mod, ok := ModifierFromName(segment)
		if !ok {
			return Combination{}, &UnknownModifierError{Text: strings.TrimSpace(segment)}
		}
		mods |= mod
	}

	return Combination{Mods: mods, Key: key}, nil
}

// CombinationFromEvent builds the Combination a live key press corresponds to,
// so that it compares equal to the parsed form of the same chord.
//
// Modifier bits outside the recognized set are ignored. Control characters
// reported with Ctrl held become Ctrl plus their letter, upper-case letters
// become Shift plus the lower-case letter, Backtab becomes Shift+Tab.
func CombinationFromEvent(mask tcell.ModMask, key tcell.Key, ch rune) Combination {
	mods := ModifiersFromTcell(mask)

	switch {
	case key == tcell.KeyRune:
		lower := unicode.ToLower(ch)
		if lower != ch {
			mods |= ModShift
		}
		return Combination{Mods: mods, Key: KeyID{Key: tcell.KeyRune, Ch: lower}}

	case mods.Has(ModCtrl) && key == tcell.KeyCtrlSpace:
		return Combination{Mods: mods, Key: KeyID{Key: tcell.KeyRune, Ch: ' '}}

	case mods.Has(ModCtrl) && key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ:
		return Combination{Mods: mods, Key: KeyID{Key: tcell.KeyRune, Ch: 'a' + rune(key-tcell.KeyCtrlA)}}

	case key == tcell.KeyBacktab:
		return Combination{Mods: mods | ModShift, Key: KeyID{Key: tcell.KeyTab}}

	case key == tcell.KeyBackspace:
		return Combination{Mods: mods, Key: KeyID{Key: tcell.KeyBackspace2}}

	default:
		return Combination{Mods: mods, Key: KeyID{Key: key}}
	}
}

// String renders the combination canonically, e.g. "Ctrl+Shift+x".
func (c Combination) String() string {
	if c.Mods == ModNone {
		return c.Key.String()
	}
	return c.Mods.String() + "+" + c.Key.String()
}
