package geometry

import (
	"math"
	"strings"
	"testing"
)

func TestArcPath(t *testing.T) {
	got := ArcPath(100, 100, 50)
	want := "M 100.00 50.00 A 50.00 50.00 0 0 0 50.00 100.00"
	if got != want {
		t.Errorf("ArcPath() = %q, want %q", got, want)
	}
}

func TestSectorPathPieSlice(t *testing.T) {
	got := SectorPath(100, 100, 0, 25)
	want := "M 100.00 100.00 L 100.00 75.00 A 25.00 25.00 0 0 0 75.00 100.00 Z"
	if got != want {
		t.Errorf("SectorPath() = %q, want %q", got, want)
	}
}

func TestSectorPathDonut(t *testing.T) {
	got := SectorPath(100, 100, 25, 45)
	want := "M 100.00 75.00 L 100.00 55.00 A 45.00 45.00 0 0 0 55.00 100.00 L 75.00 100.00 A 25.00 25.00 0 0 1 100.00 75.00 Z"
	if got != want {
		t.Errorf("SectorPath() = %q, want %q", got, want)
	}
}

func TestSectorPathShape(t *testing.T) {
	tests := []struct {
		name     string
		inner    float64
		wantArcs int
	}{
		{name: "pie slice has one arc", inner: 0, wantArcs: 1},
		{name: "donut sector has two arcs", inner: 10, wantArcs: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := SectorPath(100, 100, tt.inner, 60)
			if got := strings.Count(path, "A "); got != tt.wantArcs {
				t.Errorf("arc count = %d, want %d", got, tt.wantArcs)
			}
			if !strings.HasSuffix(path, "Z") {
				t.Error("sector path is not closed")
			}
		})
	}
}

func TestLabelAnchor(t *testing.T) {
	x, y := LabelAnchor(100, 100, 25, 45)

	// 45° into the quadrant at the ring midpoint radius 35.
	offset := 35 * math.Sqrt2 / 2
	if math.Abs(x-(100-offset)) > 1e-9 {
		t.Errorf("x = %v, want %v", x, 100-offset)
	}
	if math.Abs(y-(100-offset)) > 1e-9 {
		t.Errorf("y = %v, want %v", y, 100-offset)
	}
}

func TestOpenLabelAnchor(t *testing.T) {
	x, y := OpenLabelAnchor(100, 100, 70, 95)

	// 40% of the way from 70 to the available radius 95 is 80.
	offset := 80 * math.Sqrt2 / 2
	if math.Abs(x-(100-offset)) > 1e-9 {
		t.Errorf("x = %v, want %v", x, 100-offset)
	}
	if math.Abs(y-(100-offset)) > 1e-9 {
		t.Errorf("y = %v, want %v", y, 100-offset)
	}
}

func TestAnchorsInsideQuadrant(t *testing.T) {
	x, y := LabelAnchor(100, 100, 0, 25)
	if x >= 100 || y >= 100 {
		t.Errorf("anchor (%v, %v) outside the up-left quadrant", x, y)
	}
}
