package input

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Modifier is a set of held modifier keys.
// Duplicates collapse and order is irrelevant, so two sets compare equal with
// ==.
type Modifier uint8

const (
	// ModShift is the Shift key.
	ModShift Modifier = 1 << iota
	// ModCtrl is the Control key.
	ModCtrl
	// ModAlt is the Alt key.
	// Super shares this bit, there is no separate Super modifier.
	ModAlt
)

// ModNone is the empty modifier set.
const ModNone Modifier = 0

var modifierAliases = map[string]Modifier{
	"shift": ModShift,
	"ctrl":  ModCtrl,
	"alt":   ModAlt,
	"super": ModAlt,
}

// ModifierFromName resolves a modifier alias case-insensitively, ignoring
// surrounding whitespace.
func ModifierFromName(name string) (Modifier, bool) {
	mod, ok := modifierAliases[strings.ToLower(strings.TrimSpace(name))]
	return mod, ok
}

// ModifiersFromTcell reduces a raw tcell modifier mask to the recognized
// modifiers. Meta folds into Alt; any other bits are dropped.
func ModifiersFromTcell(mask tcell.ModMask) Modifier {
	var m Modifier
	if mask&tcell.ModShift != 0 {
		m |= ModShift
	}
	if mask&tcell.ModCtrl != 0 {
		m |= ModCtrl
	}
	if mask&(tcell.ModAlt|tcell.ModMeta) != 0 {
		m |= ModAlt
	}
	return m
}

// Has returns whether all modifiers in mod are part of m.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod == mod
}

// String renders the set as e.g. "Ctrl+Alt+Shift" (empty for no modifiers).
func (m Modifier) String() string {
	parts := make([]string, 0, 3)
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}
