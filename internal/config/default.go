package config

// Default returns the default configuration for the given colorscheme type
// (light or dark). It declares no windows.
func Default(colorschemeType ColorschemeType) Config {
	return Config{
		Stylesheet: defaultStylesheet(colorschemeType),
		Windows:    map[string]Window{},
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Light {
		return Stylesheet{
			Normal: Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			Status: Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			Log:    Styling{Fg: "#404040", Bg: "#ffffff", Style: &FontStyle{}},
			Match:  Styling{Fg: "#000000", Bg: "#c2edab", Style: &FontStyle{Bold: true}},
		}
	}
	return Stylesheet{
		Normal: Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		Status: Styling{Fg: "#f0f0f0", Bg: "#202020", Style: &FontStyle{}},
		Log:    Styling{Fg: "#c0c0c0", Bg: "#000000", Style: &FontStyle{}},
		Match:  Styling{Fg: "#c2edab", Bg: "#3a751a", Style: &FontStyle{Bold: true}},
	}
}
