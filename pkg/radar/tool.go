package radar

import "strings"

// =============================================================================
// Category - Fixed Assessment Enumeration
// =============================================================================

// Category is one of four fixed adoption-stage labels attached to each tool.
// The zero value is not a valid category.
type Category string

// The four recognized categories, innermost ring to outermost.
const (
	CategoryAdopt    Category = "adopt"
	CategoryTrial    Category = "trial"
	CategoryEvaluate Category = "evaluate"
	CategoryAware    Category = "aware"
)

// categories holds the recognized categories in ring order.
var categories = []Category{CategoryAdopt, CategoryTrial, CategoryEvaluate, CategoryAware}

// Categories returns the recognized categories in ring order
// (innermost first). The returned slice is a copy and safe to modify.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory maps a string to a recognized Category, ignoring case and
// surrounding whitespace. The second return value reports whether the input
// named a recognized category.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	return c, c.Valid()
}

// Valid reports whether c is one of the four recognized categories.
func (c Category) Valid() bool {
	return c.Index() >= 0
}

// Index returns the ring index of c (0 = innermost), or -1 if c is not a
// recognized category.
func (c Category) Index() int {
	for i, k := range categories {
		if c == k {
			return i
		}
	}
	return -1
}

// =============================================================================
// Tool - Immutable Input Record
// =============================================================================

// Reviewer identifies the person who assessed a tool.
type Reviewer struct {
	Name     string `json:"name" bson:"name" toml:"name"`
	PhotoURL string `json:"photo_url,omitempty" bson:"photo_url,omitempty" toml:"photo_url,omitempty"`
}

// Tool is a single assessed development tool. Tools are loaded once from a
// dataset and treated as read-only; positioning never mutates them.
type Tool struct {
	ID          string   `json:"id" bson:"id" toml:"id"`
	Title       string   `json:"title" bson:"title" toml:"title"`
	Description string   `json:"description,omitempty" bson:"description,omitempty" toml:"description,omitempty"`
	URL         string   `json:"url,omitempty" bson:"url,omitempty" toml:"url,omitempty"`
	Category    Category `json:"category" bson:"category" toml:"category"`

	// Optional free-text annotations.
	TeamPosition string `json:"team_position,omitempty" bson:"team_position,omitempty" toml:"team_position,omitempty"`
	AIPosition   string `json:"ai_position,omitempty" bson:"ai_position,omitempty" toml:"ai_position,omitempty"`

	Reviewer *Reviewer `json:"reviewer,omitempty" bson:"reviewer,omitempty" toml:"reviewer,omitempty"`
}

// =============================================================================
// PlacedTool - Derived Placement Entity
// =============================================================================

// Position is a 2-D placement in the fixed abstract coordinate space, both
// Cartesian and polar. Angle is in radians measured into the quadrant from
// the vertical axis; Radius is the distance from the quadrant center.
type Position struct {
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Angle  float64 `json:"angle" bson:"angle"`
	Radius float64 `json:"radius" bson:"radius"`
}

// PlacedTool is a Tool with its computed placement. PlacedTools are created
// fresh on every positioning pass; no identity persists across passes.
type PlacedTool struct {
	Tool     `bson:",inline"`
	Position Position `json:"position" bson:"position"`
}
