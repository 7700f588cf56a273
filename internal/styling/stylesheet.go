package styling

import (
	"github.com/ja-he/chordmap/internal/config"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Normal DrawStyling
	Status DrawStyling
	Log    DrawStyling
	Match  DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(config config.Stylesheet) *Stylesheet {
	stylesheet := Stylesheet{}

	stylesheet.Normal = StyleFromConfig(config.Normal)
	stylesheet.Status = StyleFromConfig(config.Status)
	stylesheet.Log = StyleFromConfig(config.Log)
	stylesheet.Match = StyleFromConfig(config.Match)

	return &stylesheet
}
