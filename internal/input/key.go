package input

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// KeyID is the canonical identity of a physical key, independent of held
// modifiers.
// Character keys are KeyRune with a lower-case Ch, all others carry a zero Ch.
type KeyID struct {
	Key tcell.Key
	Ch  rune
}

// VoidKey is the identity returned for names that resolve to no key.
var VoidKey = KeyID{}

var keyAliases = map[string]KeyID{
	"space":     {Key: tcell.KeyRune, Ch: ' '},
	"cr":        {Key: tcell.KeyEnter},
	"return":    {Key: tcell.KeyEnter},
	"enter":     {Key: tcell.KeyEnter},
	"esc":       {Key: tcell.KeyESC},
	"escape":    {Key: tcell.KeyESC},
	"del":       {Key: tcell.KeyDelete},
	"delete":    {Key: tcell.KeyDelete},
	"bs":        {Key: tcell.KeyBackspace2},
	"backspace": {Key: tcell.KeyBackspace2},
	"tab":       {Key: tcell.KeyTab},
	"plus":      {Key: tcell.KeyRune, Ch: '+'},
}

// keyNames indexes tcell's key name table by lower-cased name.
// The "Ctrl-X" composites are left out, Ctrl is a modifier here. So is
// Backtab, which is Shift+Tab.
var keyNames = func() map[string]KeyID {
	names := make(map[string]KeyID, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		lower := strings.ToLower(name)
		if k == tcell.KeyRune || k == tcell.KeyBacktab || strings.HasPrefix(lower, "ctrl-") {
			continue
		}
		names[lower] = KeyID{Key: k}
	}
	return names
}()

var displayNames = map[KeyID]string{
	VoidKey:                       "None",
	{Key: tcell.KeyRune, Ch: ' '}: "Space",
	{Key: tcell.KeyRune, Ch: '+'}: "plus",
	{Key: tcell.KeyBackspace2}:    "Backspace",
}

// KeyFromName resolves a key name case-insensitively.
// Accepted are single characters, a few common aliases ("space", "cr", "esc",
// "bs", ...) and the names tcell gives its special keys ("F1", "PgUp", ...).
// Returns VoidKey if the name does not resolve.
func KeyFromName(name string) KeyID {
	lower := strings.ToLower(name)
	if key, ok := keyAliases[lower]; ok {
		return key
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if r == utf8.RuneError || !unicode.IsPrint(r) {
			return VoidKey
		}
		return KeyID{Key: tcell.KeyRune, Ch: unicode.ToLower(r)}
	}
	if key, ok := keyNames[lower]; ok {
		return key
	}
	return VoidKey
}

// String returns a name for the key that KeyFromName resolves back to it.
func (k KeyID) String() string {
	if name, ok := displayNames[k]; ok {
		return name
	}
	if k.Key == tcell.KeyRune {
		return string(k.Ch)
	}
	if name, ok := tcell.KeyNames[k.Key]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k.Key))
}
