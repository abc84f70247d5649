package styles

import "bytes"

// Style defines the visual appearance for radar rendering.
// Implementations control how ring sectors, labels, dots, and popups are drawn.
type Style interface {
	// RenderDefs writes SVG <defs> and frame content (background, filters).
	RenderDefs(buf *bytes.Buffer, width, height float64)
	// RenderSector writes the SVG for a single ring band sector.
	RenderSector(buf *bytes.Buffer, s Sector)
	// RenderRingLabel writes the SVG for a ring's category label.
	RenderRingLabel(buf *bytes.Buffer, l RingLabel)
	// RenderDot writes the SVG for a single tool dot.
	RenderDot(buf *bytes.Buffer, d Dot)
	// RenderDotText writes the SVG for a dot's label text.
	RenderDotText(buf *bytes.Buffer, d Dot)
	// RenderPopup writes the SVG for a dot's hover popup.
	RenderPopup(buf *bytes.Buffer, d Dot)
	// RenderTitle writes the SVG for the radar heading.
	RenderTitle(buf *bytes.Buffer, text string, x, y float64)
}

// Sector contains all data needed to render a single ring band.
type Sector struct {
	Category string // Category identifier ("adopt", "trial", ...)
	Band     int    // Ring index, 0 = innermost
	Path     string // SVG path data for the band shape
	ArcPath  string // SVG path data for the outer boundary arc ("" if open)
}

// RingLabel positions a category heading inside its ring band.
type RingLabel struct {
	Category string  // Category identifier
	Label    string  // Display text
	X, Y     float64 // Anchor coordinates
}

// Dot contains all data needed to render a single positioned tool.
type Dot struct {
	ID       string     // Tool identifier
	Label    string     // Display text
	Category string     // Category identifier
	Band     int        // Ring index, 0 = innermost
	X, Y     float64    // Dot center coordinates
	URL      string     // Optional link target
	Popup    *PopupData // Hover popup content (nil if disabled)
}

// PopupData holds tool metadata displayed in hover popups.
type PopupData struct {
	Description  string // Tool description
	URL          string // Tool homepage
	TeamPosition string // Team assessment note
	AIPosition   string // Assistant assessment note
	Reviewer     string // Reviewer name ("" if unknown)
}
