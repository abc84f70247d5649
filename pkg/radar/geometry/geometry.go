// Package geometry produces the vector drawing primitives for radar rings.
//
// All helpers are pure functions over ring radii and a center point. Paths
// are expressed in SVG path syntax and confined to the quadrant extending up
// and left from the center, matching the placement convention of the
// position package. Output is radius-proportional and resolution
// independent.
package geometry

import (
	"fmt"
	"math"
)

// sqrt2Inv is cos(45°) == sin(45°), the quadrant midline direction.
var sqrt2Inv = math.Sqrt2 / 2

// openLabelLerp interpolates the open outermost ring's label radius 40% of
// the way from its inner bound to the available radius.
const openLabelLerp = 0.4

// ArcPath returns a single 90° arc of radius r from the top point
// (cx, cy−r) to the left point (cx−r, cy), sweeping through the quadrant
// interior (sweep flag 0 in a y-down coordinate system).
func ArcPath(cx, cy, r float64) string {
	return fmt.Sprintf("M %.2f %.2f A %.2f %.2f 0 0 0 %.2f %.2f",
		cx, cy-r, r, r, cx-r, cy)
}

// SectorPath returns a closed path for a filled quarter-annulus sector
// between inner and outer. When inner is 0 the sector degenerates to a pie
// slice from the center to the outer arc; otherwise it is a donut-sector of
// two concentric arcs joined by two radial segments.
func SectorPath(cx, cy, inner, outer float64) string {
	if inner == 0 {
		return fmt.Sprintf("M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 0 0 %.2f %.2f Z",
			cx, cy,
			cx, cy-outer,
			outer, outer, cx-outer, cy)
	}
	return fmt.Sprintf("M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 0 0 %.2f %.2f L %.2f %.2f A %.2f %.2f 0 0 1 %.2f %.2f Z",
		cx, cy-inner,
		cx, cy-outer,
		outer, outer, cx-outer, cy,
		cx-inner, cy,
		inner, inner, cx, cy-inner)
}

// LabelAnchor returns the anchor point for a ring label, placed 45° into the
// quadrant at the ring's midpoint radius.
func LabelAnchor(cx, cy, inner, outer float64) (x, y float64) {
	return anchorAt(cx, cy, (inner+outer)/2)
}

// OpenLabelAnchor returns the label anchor for an unbounded outermost ring:
// 45° into the quadrant at a radius interpolated 40% of the way from the
// ring's inner bound to the overall available radius.
func OpenLabelAnchor(cx, cy, inner, available float64) (x, y float64) {
	return anchorAt(cx, cy, inner+openLabelLerp*(available-inner))
}

func anchorAt(cx, cy, r float64) (x, y float64) {
	return cx - r*sqrt2Inv, cy - r*sqrt2Inv
}
