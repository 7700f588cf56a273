// Package keymap compiles declared window keymaps into lookup tables and
// resolves key presses against them.
package keymap

import (
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/chordmap/internal/input"
)

// Binding is what a combination resolves to.
type Binding struct {
	Command string
	Inhibit bool
}

// Keymap is a compiled WindowKeymap.
// It is never modified after Compile returns, so lookups need no locking.
type Keymap struct {
	bindings map[input.Combination]Binding
}

// Compile compiles the given keymap.
//
// Binds whose combination does not parse are left out and reported as
// diagnostics, in declaration order. Later binds replace earlier ones for the
// same combination.
func Compile(w WindowKeymap) (*Keymap, []Diagnostic) {
	bindings := make(map[input.Combination]Binding, len(w.Binds))
	var diagnostics []Diagnostic

	for i := range w.Binds {
		b := &w.Binds[i]
		combination, err := input.ParseCombination(b.Combination)
		if err != nil {
			diagnostics = append(diagnostics, Diagnostic{Span: b.Span, Err: err})
			continue
		}
		bindings[combination] = Binding{
			Command: b.Cmd,
			Inhibit: w.effectiveInhibit(b),
		}
	}

	return &Keymap{bindings: bindings}, diagnostics
}

// Lookup resolves a key press given tcell's raw modifier mask and key.
// Modifier bits outside of Shift, Ctrl, Alt and Meta are ignored.
func (k *Keymap) Lookup(mods tcell.ModMask, key tcell.Key, ch rune) (Binding, bool) {
	return k.LookupCombination(input.CombinationFromEvent(mods, key, ch))
}

// LookupEvent resolves a tcell key event.
func (k *Keymap) LookupEvent(e *tcell.EventKey) (Binding, bool) {
	return k.Lookup(e.Modifiers(), e.Key(), e.Rune())
}

// LookupCombination resolves an already constructed combination.
func (k *Keymap) LookupCombination(c input.Combination) (Binding, bool) {
	b, ok := k.bindings[c]
	return b, ok
}

// Len returns the number of distinct combinations bound.
func (k *Keymap) Len() int {
	return len(k.bindings)
}

// Entry is a single compiled binding.
type Entry struct {
	Combination input.Combination
	Binding     Binding
}

// Entries returns all compiled bindings sorted by their rendered combination.
func (k *Keymap) Entries() []Entry {
	entries := make([]Entry, 0, len(k.bindings))
	for c, b := range k.bindings {
		entries = append(entries, Entry{Combination: c, Binding: b})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Combination.String() < entries[j].Combination.String()
	})
	return entries
}
