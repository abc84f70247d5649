package position

import (
	"math"

	"github.com/matzehuels/toolradar/pkg/radar"
)

const (
	// quadrant is the angular extent of the placement region (a quarter turn).
	quadrant = math.Pi / 2

	// radiusBandStart and radiusBandWidth confine placement to the middle
	// 30%-70% band of a ring's span, keeping dots clear of ring arcs and
	// labels.
	radiusBandStart = 0.3
	radiusBandWidth = 0.4

	// angleJitterShare bounds the angular jitter to 30% of one step, which
	// keeps neighboring tools from crossing over.
	angleJitterShare = 0.3
)

// Assign computes a placement for every tool whose category has a ring in
// rings. Tools with unrecognized categories are silently dropped. The output
// is ordered by ring order, then by input order within each category.
//
// Assign never fails: malformed ring tables are a caller contract violation,
// checked (if desired) with [radar.RingSet.Validate] before calling.
func Assign(tools []radar.Tool, rings radar.RingSet, cx, cy float64) []radar.PlacedTool {
	groups := make(map[radar.Category][]radar.Tool, len(rings.Rings))
	for _, t := range tools {
		groups[t.Category] = append(groups[t.Category], t)
	}

	placed := make([]radar.PlacedTool, 0, len(tools))
	for _, ring := range rings.Rings {
		placed = placeGroup(placed, groups[ring.Category], ring, cx, cy)
	}
	return placed
}

// placeGroup appends placements for one category's tools, spreading them
// across the quadrant with n+1 equal angular steps.
func placeGroup(placed []radar.PlacedTool, group []radar.Tool, ring radar.Ring, cx, cy float64) []radar.PlacedTool {
	n := len(group)
	if n == 0 {
		return placed
	}

	step := quadrant / float64(n+1)
	for i, tool := range group {
		base := float64(i+1) * step
		radius := ring.Inner + ring.Span()*(radiusBandStart+radiusBandWidth*unitInterval(tool.ID))
		angle := base + centeredInterval(tool.ID)*step*angleJitterShare

		placed = append(placed, radar.PlacedTool{
			Tool: tool,
			Position: radar.Position{
				X:      cx - radius*math.Cos(angle),
				Y:      cy - radius*math.Sin(angle),
				Angle:  angle,
				Radius: radius,
			},
		})
	}
	return placed
}
