package config

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/ja-he/chordmap/internal/keymap"
)

// Config is the configuration data as present in a config file at
// '${CHORDMAP_HOME}/config.yaml'.
type Config struct {
	Stylesheet Stylesheet        `yaml:"stylesheet"`
	Windows    map[string]Window `yaml:"windows"`

	source string
}

// A Window is the keymap declared for one window.
type Window struct {
	Inhibit *bool  `yaml:"inhibit"`
	Binds   []Bind `yaml:"binds"`
}

// A Bind is a single key binding as defined in a config file.
// Its position in the file is kept for error reporting.
type Bind struct {
	Key     string `yaml:"key"`
	Cmd     string `yaml:"cmd"`
	Inhibit *bool  `yaml:"inhibit"`

	Line   int `yaml:"-"`
	Column int `yaml:"-"`
}

// UnmarshalYAML decodes a bind, recording the position of its key (or of the
// bind itself, if it has no key).
func (b *Bind) UnmarshalYAML(value *yaml.Node) error {
	type plain Bind
	var decoded plain
	if err := value.Decode(&decoded); err != nil {
		return err
	}
	*b = Bind(decoded)

	b.Line, b.Column = value.Line, value.Column
	for i := 0; i+1 < len(value.Content); i += 2 {
		if value.Content[i].Value == "key" {
			b.Line, b.Column = value.Content[i+1].Line, value.Content[i+1].Column
			break
		}
	}
	return nil
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal Styling `yaml:"normal"`
	Status Styling `yaml:"status"`
	Log    Styling `yaml:"log"`
	Match  Styling `yaml:"match"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
// The source names the data in diagnostics, usually it is the file path.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, source string, yamlData []byte) (Config, error) {
	defaultConfig := Default(defaultTheme)
	defaultConfig.source = source

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%w)", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)

	return result, nil
}

// WindowNames returns the names of all windows in the config, sorted.
func (c Config) WindowNames() []string {
	names := make([]string, 0, len(c.Windows))
	for name := range c.Windows {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WindowKeymap returns the declared keymap for the named window.
func (c Config) WindowKeymap(name string) (keymap.WindowKeymap, error) {
	window, ok := c.Windows[name]
	if !ok {
		return keymap.WindowKeymap{}, fmt.Errorf("no window '%s' configured", name)
	}

	binds := make([]keymap.Bind, 0, len(window.Binds))
	for _, b := range window.Binds {
		binds = append(binds, keymap.Bind{
			Inhibit:     b.Inhibit,
			Combination: b.Key,
			Span:        keymap.Span{Source: c.source, Line: b.Line, Column: b.Column},
			Cmd:         b.Cmd,
		})
	}

	return keymap.WindowKeymap{Binds: binds, Inhibit: window.Inhibit}, nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	if len(augment.Windows) > 0 {
		result.Windows = augment.Windows
	}

	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.Status.overwriteIfDefined(augment.Status)
	result.Log.overwriteIfDefined(augment.Log)
	result.Match.overwriteIfDefined(augment.Match)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		style := *augment.Style
		s.Style = &style
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)
