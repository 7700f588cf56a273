package config_test

import (
	"testing"

	"github.com/ja-he/chordmap/internal/config"
	"github.com/ja-he/chordmap/internal/keymap"
)

const testConfig = `
stylesheet:
  match:
    fg: "#ffffff"
    bg: "#ff0000"
windows:
  main:
    inhibit: true
    binds:
      - key: "Ctrl + q"
        cmd: "notify-send quit"
      - cmd: "echo no key"
      - key: "Alt+x"
        cmd: "echo x"
        inhibit: false
  bar:
    binds: []
`

func TestParseConfigAugmentDefaults(t *testing.T) {
	c, err := config.ParseConfigAugmentDefaults(config.Dark, "test.yaml", []byte(testConfig))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	t.Run("windows", func(t *testing.T) {
		names := c.WindowNames()
		if len(names) != 2 || names[0] != "bar" || names[1] != "main" {
			t.Error("unexpected window names:", names)
		}
	})

	t.Run("stylesheet augmented", func(t *testing.T) {
		if c.Stylesheet.Match.Bg != "#ff0000" {
			t.Error("expected match style to be overwritten, got", c.Stylesheet.Match.Bg)
		}
		normal := config.Default(config.Dark).Stylesheet.Normal
		if c.Stylesheet.Normal.Fg != normal.Fg || c.Stylesheet.Normal.Bg != normal.Bg {
			t.Error("expected normal style to remain default")
		}
	})

	t.Run("keymap", func(t *testing.T) {
		w, err := c.WindowKeymap("main")
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		if w.Inhibit == nil || !*w.Inhibit {
			t.Error("expected window-level inhibit to be set")
		}
		if len(w.Binds) != 3 {
			t.Fatal("expected three binds, got", len(w.Binds))
		}

		first := w.Binds[0]
		if first.Combination != "Ctrl + q" || first.Cmd != "notify-send quit" || first.Inhibit != nil {
			t.Errorf("unexpected first bind %#v", first)
		}
		if (first.Span != keymap.Span{Source: "test.yaml", Line: 10, Column: 14}) {
			t.Error("unexpected span for first bind:", first.Span)
		}

		keyless := w.Binds[1]
		if keyless.Combination != "" || keyless.Span.Line != 12 {
			t.Errorf("unexpected keyless bind %#v", keyless)
		}

		third := w.Binds[2]
		if third.Inhibit == nil || *third.Inhibit {
			t.Error("expected third bind to explicitly not inhibit")
		}
	})

	t.Run("compiles", func(t *testing.T) {
		w, _ := c.WindowKeymap("main")
		km, diagnostics := keymap.Compile(w)
		if km.Len() != 2 {
			t.Error("expected two compiled bindings, got", km.Len())
		}
		if len(diagnostics) != 1 || diagnostics[0].Span.Line != 12 {
			t.Error("expected single diagnostic for keyless bind, got", diagnostics)
		}
	})

	t.Run("unknown window", func(t *testing.T) {
		if _, err := c.WindowKeymap("nope"); err == nil {
			t.Error("expected error for unknown window")
		}
	})
}

func TestParseConfigErrors(t *testing.T) {
	_, err := config.ParseConfigAugmentDefaults(config.Light, "bad.yaml", []byte("windows: ["))
	if err == nil {
		t.Error("expected error on malformed yaml")
	}
}

func TestEmptyConfigUsesDefaults(t *testing.T) {
	c, err := config.ParseConfigAugmentDefaults(config.Light, "empty.yaml", []byte{})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	status := config.Default(config.Light).Stylesheet.Status
	if c.Stylesheet.Status.Fg != status.Fg || c.Stylesheet.Status.Bg != status.Bg {
		t.Error("expected default light stylesheet")
	}
	if len(c.WindowNames()) != 0 {
		t.Error("expected no windows")
	}
}
