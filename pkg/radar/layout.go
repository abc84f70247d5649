package radar

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Visualization types.
const (
	VizTypeRadar = "radar"
	VizTypeFlow  = "flow"
)

// Visual styles for rendering.
const (
	StyleLight = "light"
	StyleDark  = "dark"
)

// =============================================================================
// Layout - Unified Visualization Format
// =============================================================================

// Layout is the unified serialization format for computed visualizations.
//
// This is a discriminated union type - check VizType to determine which
// fields are populated:
//
//	Radar ("radar"):
//	  - Placements: positioned tools with polar and Cartesian coordinates
//	  - CenterX/Y, Rings: quadrant geometry the placements were computed for
//
//	Flow ("flow"):
//	  - DOT: Graphviz DOT string for the category-flow board
//	  - Engine: Graphviz layout engine (e.g., "dot")
//
// Shared fields (both types):
//   - Width, Height: frame dimensions
//   - Style: visual style ("light", "dark")
//   - Title: dataset title for headings
//
// Positions are always derived data: a Layout can be regenerated from the
// dataset at any time and regeneration is deterministic.
type Layout struct {
	// Discriminator
	VizType string `json:"viz_type" bson:"viz_type"`

	// Common dimensions and style
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
	Style  string  `json:"style,omitempty" bson:"style,omitempty"`
	Title  string  `json:"title,omitempty" bson:"title,omitempty"`

	// Radar-specific
	CenterX    float64      `json:"center_x,omitempty" bson:"center_x,omitempty"`
	CenterY    float64      `json:"center_y,omitempty" bson:"center_y,omitempty"`
	Rings      RingSet      `json:"ring_set,omitempty" bson:"ring_set,omitempty"`
	Placements []PlacedTool `json:"placements,omitempty" bson:"placements,omitempty"`

	// Flow-specific
	DOT    string `json:"dot,omitempty" bson:"dot,omitempty"`
	Engine string `json:"engine,omitempty" bson:"engine,omitempty"`
}

// IsRadar returns true if this is a radar layout.
func (l *Layout) IsRadar() bool { return l.VizType == VizTypeRadar }

// IsFlow returns true if this is a flow layout.
func (l *Layout) IsFlow() bool { return l.VizType == VizTypeFlow }

// =============================================================================
// Serialization
// =============================================================================

// ReadLayout decodes a JSON layout from r.
func ReadLayout(r io.Reader) (*Layout, error) {
	var l Layout
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	return &l, nil
}

// ReadLayoutFile reads a JSON layout file at path.
func ReadLayoutFile(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadLayout(f)
}

// WriteLayout encodes the layout as indented JSON and writes it to w.
// The output can be re-imported with [ReadLayout] for round-trip rendering.
func WriteLayout(l *Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	return nil
}

// WriteLayoutFile writes the layout to a JSON file at path.
func WriteLayoutFile(l *Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteLayout(l, f)
}
