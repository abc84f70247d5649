package styles

import (
	"github.com/matzehuels/toolradar/pkg/errors"
	"github.com/matzehuels/toolradar/pkg/radar"
)

// Theme holds the color palette and category labels for a themed style.
// All colors are SVG color strings.
type Theme struct {
	Name       string
	Background string

	// Per-category band fills and dot fills, innermost ring first.
	SectorFills map[radar.Category]string
	DotFills    map[radar.Category]string

	// Per-category ring heading text. Defaults to the upper-cased
	// category name when a category is missing.
	Labels map[radar.Category]string

	ArcStroke   string
	RingLabel   string
	DotStroke   string
	DotText     string
	TitleColor  string
	PopupFill   string
	PopupStroke string
	PopupText   string
}

// LightTheme is the default palette for white backgrounds.
func LightTheme() Theme {
	return Theme{
		Name:       radar.StyleLight,
		Background: "#ffffff",
		SectorFills: map[radar.Category]string{
			radar.CategoryAdopt:    "#e8f5e9",
			radar.CategoryTrial:    "#e3f2fd",
			radar.CategoryEvaluate: "#fff8e1",
			radar.CategoryAware:    "#f3e5f5",
		},
		DotFills: map[radar.Category]string{
			radar.CategoryAdopt:    "#2e7d32",
			radar.CategoryTrial:    "#1565c0",
			radar.CategoryEvaluate: "#f9a825",
			radar.CategoryAware:    "#6a1b9a",
		},
		ArcStroke:   "#9e9e9e",
		RingLabel:   "#616161",
		DotStroke:   "#ffffff",
		DotText:     "#212121",
		TitleColor:  "#212121",
		PopupFill:   "#ffffff",
		PopupStroke: "#9e9e9e",
		PopupText:   "#212121",
	}
}

// DarkTheme is the palette for dark backgrounds.
func DarkTheme() Theme {
	return Theme{
		Name:       radar.StyleDark,
		Background: "#1c1c1e",
		SectorFills: map[radar.Category]string{
			radar.CategoryAdopt:    "#1f3322",
			radar.CategoryTrial:    "#1c2a3d",
			radar.CategoryEvaluate: "#3a3320",
			radar.CategoryAware:    "#31203d",
		},
		DotFills: map[radar.Category]string{
			radar.CategoryAdopt:    "#66bb6a",
			radar.CategoryTrial:    "#64b5f6",
			radar.CategoryEvaluate: "#ffd54f",
			radar.CategoryAware:    "#ba68c8",
		},
		ArcStroke:   "#5e5e62",
		RingLabel:   "#9e9ea2",
		DotStroke:   "#1c1c1e",
		DotText:     "#f2f2f7",
		TitleColor:  "#f2f2f7",
		PopupFill:   "#2c2c2e",
		PopupStroke: "#5e5e62",
		PopupText:   "#f2f2f7",
	}
}

// Light returns the themed style for the light palette.
func Light() Style { return Themed{Theme: LightTheme()} }

// Dark returns the themed style for the dark palette.
func Dark() Style { return Themed{Theme: DarkTheme()} }

// Parse maps a style name to its Style. An empty name selects light.
func Parse(name string) (Style, error) {
	switch name {
	case "", radar.StyleLight:
		return Light(), nil
	case radar.StyleDark:
		return Dark(), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidStyle, "unknown style: %s", name)
}
