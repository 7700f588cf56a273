package keymap_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/chordmap/internal/input"
	"github.com/ja-he/chordmap/internal/keymap"
)

func boolPtr(b bool) *bool { return &b }

func span(line int) keymap.Span {
	return keymap.Span{Source: "config.yaml", Line: line, Column: 12}
}

func TestCompile(t *testing.T) {

	t.Run("last declared wins", func(t *testing.T) {
		km, diagnostics := keymap.Compile(keymap.WindowKeymap{
			Binds: []keymap.Bind{
				{Combination: "Ctrl+Shift+x", Cmd: "first", Inhibit: boolPtr(false), Span: span(1)},
				{Combination: "shift + CTRL + X", Cmd: "second", Inhibit: boolPtr(true), Span: span(2)},
			},
		})
		if len(diagnostics) != 0 {
			t.Error("unexpected diagnostics:", diagnostics)
		}
		if km.Len() != 1 {
			t.Fatal("expected exactly one entry, got", km.Len())
		}
		b, ok := km.Lookup(tcell.ModCtrl|tcell.ModShift, tcell.KeyRune, 'x')
		if !ok {
			t.Fatal("expected a binding")
		}
		if b.Command != "second" || !b.Inhibit {
			t.Errorf("expected later bind to win, got %#v", b)
		}
	})

	t.Run("invalid binds are skipped", func(t *testing.T) {
		km, diagnostics := keymap.Compile(keymap.WindowKeymap{
			Binds: []keymap.Bind{
				{Combination: "ctrl+a", Cmd: "a", Span: span(1)},
				{Combination: "Ctrl+Frobnicate", Cmd: "broken", Span: span(2)},
				{Combination: "ctrl+b", Cmd: "b", Span: span(3)},
			},
		})
		if km.Len() != 2 {
			t.Error("expected two entries, got", km.Len())
		}
		if len(diagnostics) != 1 {
			t.Fatal("expected exactly one diagnostic, got", len(diagnostics))
		}
		if diagnostics[0].Span != span(2) {
			t.Error("diagnostic references wrong span:", diagnostics[0].Span)
		}
		var unknownKey *input.UnknownKeyError
		if !errors.As(diagnostics[0], &unknownKey) {
			t.Error("expected diagnostic to wrap unknown key error, got", diagnostics[0].Err)
		}
	})

	t.Run("diagnostics keep declaration order", func(t *testing.T) {
		_, diagnostics := keymap.Compile(keymap.WindowKeymap{
			Binds: []keymap.Bind{
				{Combination: "", Span: span(1)},
				{Combination: "ctrl+ok", Span: span(2)},
				{Combination: "Bogus+x", Span: span(3)},
			},
		})
		if len(diagnostics) != 3 {
			t.Fatal("expected three diagnostics, got", len(diagnostics))
		}
		if !errors.Is(diagnostics[0], input.ErrMissingKey) {
			t.Error("expected missing key first, got", diagnostics[0].Err)
		}
		var unknownModifier *input.UnknownModifierError
		if !errors.As(diagnostics[2], &unknownModifier) {
			t.Error("expected unknown modifier last, got", diagnostics[2].Err)
		}
		for i, d := range diagnostics {
			if d.Span != span(i+1) {
				t.Errorf("diagnostic %d has span %s", i, d.Span)
			}
		}
	})

	t.Run("empty keymap", func(t *testing.T) {
		km, diagnostics := keymap.Compile(keymap.WindowKeymap{})
		if km == nil || km.Len() != 0 || len(diagnostics) != 0 {
			t.Error("expected empty keymap without diagnostics")
		}
	})
}

func TestInhibitInheritance(t *testing.T) {
	km, _ := keymap.Compile(keymap.WindowKeymap{
		Inhibit: boolPtr(true),
		Binds: []keymap.Bind{
			{Combination: "ctrl+a", Cmd: "inherits"},
			{Combination: "ctrl+b", Cmd: "overrides", Inhibit: boolPtr(false)},
		},
	})

	a, _ := km.Lookup(tcell.ModCtrl, tcell.KeyRune, 'a')
	if !a.Inhibit {
		t.Error("expected bind without own flag to inherit keymap default")
	}
	b, _ := km.Lookup(tcell.ModCtrl, tcell.KeyRune, 'b')
	if b.Inhibit {
		t.Error("expected explicit inhibit=false to override keymap default")
	}

	t.Run("unset at both levels", func(t *testing.T) {
		km, _ := keymap.Compile(keymap.WindowKeymap{
			Binds: []keymap.Bind{{Combination: "ctrl+a", Cmd: "a"}},
		})
		a, ok := km.Lookup(tcell.ModCtrl, tcell.KeyRune, 'a')
		if !ok || a.Inhibit {
			t.Error("expected binding not to inhibit by default")
		}
	})
}

func TestLookup(t *testing.T) {
	km, _ := keymap.Compile(keymap.WindowKeymap{
		Binds: []keymap.Bind{
			{Combination: "Ctrl+q", Cmd: "quit", Inhibit: boolPtr(true)},
			{Combination: "F5", Cmd: "reload"},
			{Combination: "Shift+Tab", Cmd: "previous"},
			{Combination: "Ctrl+plus", Cmd: "zoom"},
		},
	})

	t.Run("match", func(t *testing.T) {
		b, ok := km.Lookup(tcell.ModCtrl, tcell.KeyRune, 'q')
		if !ok || b.Command != "quit" || !b.Inhibit {
			t.Errorf("expected (quit, true), got %#v (%t)", b, ok)
		}
	})

	t.Run("extra modifier does not match", func(t *testing.T) {
		if _, ok := km.Lookup(tcell.ModCtrl|tcell.ModShift, tcell.KeyRune, 'q'); ok {
			t.Error("unexpectedly matched with shift held")
		}
	})

	t.Run("unrecognized bits are masked", func(t *testing.T) {
		b, ok := km.Lookup(tcell.ModCtrl|tcell.ModMask(1<<7), tcell.KeyRune, 'q')
		if !ok || b.Command != "quit" {
			t.Error("expected extraneous bit to be ignored")
		}
	})

	t.Run("event", func(t *testing.T) {
		b, ok := km.LookupEvent(tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl))
		if !ok || b.Command != "quit" {
			t.Errorf("expected ctrl+q event to match, got %#v (%t)", b, ok)
		}
		b, ok = km.LookupEvent(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone))
		if !ok || b.Command != "reload" || b.Inhibit {
			t.Errorf("expected (reload, false), got %#v (%t)", b, ok)
		}
	})

	t.Run("backtab event matches shift+tab", func(t *testing.T) {
		b, ok := km.LookupEvent(tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone))
		if !ok || b.Command != "previous" {
			t.Errorf("expected (previous, false), got %#v (%t)", b, ok)
		}
	})

	t.Run("plus", func(t *testing.T) {
		b, ok := km.Lookup(tcell.ModCtrl, tcell.KeyRune, '+')
		if !ok || b.Command != "zoom" {
			t.Errorf("expected (zoom, false), got %#v (%t)", b, ok)
		}
	})

	t.Run("no match", func(t *testing.T) {
		if _, ok := km.Lookup(tcell.ModNone, tcell.KeyRune, 'q'); ok {
			t.Error("unexpectedly matched bare q")
		}
	})
}

func TestEntries(t *testing.T) {
	km, _ := keymap.Compile(keymap.WindowKeymap{
		Binds: []keymap.Bind{
			{Combination: "ctrl+b", Cmd: "b"},
			{Combination: "ctrl+a", Cmd: "a"},
		},
	})
	entries := km.Entries()
	if len(entries) != 2 {
		t.Fatal("expected two entries, got", len(entries))
	}
	if entries[0].Combination.String() != "Ctrl+a" || entries[1].Binding.Command != "b" {
		t.Error("entries not sorted:", entries)
	}
}

func TestDiagnosticMessage(t *testing.T) {
	_, diagnostics := keymap.Compile(keymap.WindowKeymap{
		Binds: []keymap.Bind{{Combination: "Ctrl+Frobnicate", Span: span(4)}},
	})
	if len(diagnostics) != 1 {
		t.Fatal("expected one diagnostic")
	}
	msg := diagnostics[0].Error()
	for _, part := range []string{
		"config.yaml:4:12",
		"Invalid key combination provided: unknown key 'Frobnicate'",
		keymap.FormatHint,
	} {
		if !strings.Contains(msg, part) {
			t.Errorf("expected message '%s' to contain '%s'", msg, part)
		}
	}
}
