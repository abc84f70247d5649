package radar

import "github.com/matzehuels/toolradar/pkg/errors"

// =============================================================================
// Ring - Per-Category Radial Bounds
// =============================================================================

// Ring is the annular region of the radar associated with one category,
// bounded by an inner and outer radius.
type Ring struct {
	Category Category `json:"category" bson:"category"`
	Inner    float64  `json:"inner" bson:"inner"`
	Outer    float64  `json:"outer" bson:"outer"`
}

// Span returns the radial extent of the ring.
func (r Ring) Span() float64 { return r.Outer - r.Inner }

// Mid returns the radius halfway between the ring's bounds.
func (r Ring) Mid() float64 { return (r.Inner + r.Outer) / 2 }

// =============================================================================
// RingSet - Ordered Ring Table
// =============================================================================

// RingSet is the ordered ring boundary table for a radar, innermost ring
// first. A well-formed RingSet covers all four recognized categories with
// nested bounds: each ring's inner radius equals the previous ring's outer
// radius, and the innermost ring starts at zero.
//
// OpenOutermost marks presentation configurations that treat the outermost
// category as unbounded. It changes label anchoring only; placement always
// uses the configured outer bound.
type RingSet struct {
	Rings         []Ring `json:"rings" bson:"rings"`
	OpenOutermost bool   `json:"open_outermost,omitempty" bson:"open_outermost,omitempty"`
}

// defaultSpans holds the relative radial extent of each ring in category
// order. At a max radius of 95 these give the conventional bounds
// adopt=(0,25), trial=(25,45), evaluate=(45,70), aware=(70,95).
var defaultSpans = []float64{25, 20, 25, 25}

// DefaultRings builds the standard ring table scaled to maxRadius.
func DefaultRings(maxRadius float64) RingSet {
	var total float64
	for _, s := range defaultSpans {
		total += s
	}

	rings := make([]Ring, len(categories))
	inner := 0.0
	for i, c := range categories {
		outer := inner + defaultSpans[i]/total*maxRadius
		rings[i] = Ring{Category: c, Inner: inner, Outer: outer}
		inner = outer
	}
	// Snap the outermost bound to avoid accumulated float drift.
	rings[len(rings)-1].Outer = maxRadius

	return RingSet{Rings: rings}
}

// Ring returns the ring for the given category.
func (rs RingSet) Ring(c Category) (Ring, bool) {
	for _, r := range rs.Rings {
		if r.Category == c {
			return r, true
		}
	}
	return Ring{}, false
}

// MaxRadius returns the outer bound of the outermost ring, or 0 for an
// empty set.
func (rs RingSet) MaxRadius() float64 {
	if len(rs.Rings) == 0 {
		return 0
	}
	return rs.Rings[len(rs.Rings)-1].Outer
}

// Validate checks the ring table against the caller contract: all four
// recognized categories present in ring order, non-inverted bounds, nested
// rings, and an innermost ring starting at zero. Positioning itself never
// checks these invariants; callers validate at the boundary.
func (rs RingSet) Validate() error {
	if len(rs.Rings) != len(categories) {
		return errors.New(errors.ErrCodeInvalidRings,
			"ring table must cover all %d categories, got %d rings", len(categories), len(rs.Rings))
	}

	prev := 0.0
	for i, r := range rs.Rings {
		if r.Category != categories[i] {
			return errors.New(errors.ErrCodeInvalidRings,
				"ring %d must be %q, got %q", i, categories[i], r.Category)
		}
		if r.Inner < 0 || r.Outer < r.Inner {
			return errors.New(errors.ErrCodeInvalidRings,
				"ring %q has inverted bounds (%.2f, %.2f)", r.Category, r.Inner, r.Outer)
		}
		if r.Inner != prev {
			return errors.New(errors.ErrCodeInvalidRings,
				"ring %q inner radius %.2f does not touch previous outer radius %.2f", r.Category, r.Inner, prev)
		}
		prev = r.Outer
	}

	return nil
}
