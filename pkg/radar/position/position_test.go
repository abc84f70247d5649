package position

import (
	"math"
	"reflect"
	"testing"

	"github.com/matzehuels/toolradar/pkg/radar"
)

// testRings returns the conventional ring table used throughout the tests:
// adopt=(0,25), trial=(25,45), evaluate=(45,70), aware=(70,95).
func testRings() radar.RingSet {
	return radar.RingSet{Rings: []radar.Ring{
		{Category: radar.CategoryAdopt, Inner: 0, Outer: 25},
		{Category: radar.CategoryTrial, Inner: 25, Outer: 45},
		{Category: radar.CategoryEvaluate, Inner: 45, Outer: 70},
		{Category: radar.CategoryAware, Inner: 70, Outer: 95},
	}}
}

func TestAssignDeterminism(t *testing.T) {
	tools := []radar.Tool{
		{ID: "a", Title: "A", Category: radar.CategoryTrial},
		{ID: "b", Title: "B", Category: radar.CategoryAdopt},
		{ID: "c", Title: "C", Category: radar.CategoryAware},
	}

	first := Assign(tools, testRings(), 100, 100)
	second := Assign(tools, testRings(), 100, 100)

	if !reflect.DeepEqual(first, second) {
		t.Error("Assign() is not deterministic: repeated calls differ")
	}
}

func TestAssignContainment(t *testing.T) {
	tools := []radar.Tool{
		{ID: "alpha", Category: radar.CategoryAdopt},
		{ID: "beta", Category: radar.CategoryAdopt},
		{ID: "gamma", Category: radar.CategoryTrial},
		{ID: "delta", Category: radar.CategoryEvaluate},
		{ID: "epsilon", Category: radar.CategoryAware},
		{ID: "zeta", Category: radar.CategoryAware},
	}
	rings := testRings()

	for _, p := range Assign(tools, rings, 100, 100) {
		ring, ok := rings.Ring(p.Category)
		if !ok {
			t.Fatalf("placed tool %q has no ring", p.ID)
		}
		lo := ring.Inner + 0.3*ring.Span()
		hi := ring.Inner + 0.7*ring.Span()
		if p.Position.Radius < lo || p.Position.Radius >= hi {
			t.Errorf("tool %q radius = %v, want within [%v, %v)", p.ID, p.Position.Radius, lo, hi)
		}
	}
}

func TestAssignAngularOrdering(t *testing.T) {
	// Many same-category tools: the bounded jitter must never invert the
	// relative order of two adjacent tools.
	tools := []radar.Tool{
		{ID: "one", Category: radar.CategoryEvaluate},
		{ID: "two", Category: radar.CategoryEvaluate},
		{ID: "three", Category: radar.CategoryEvaluate},
		{ID: "four", Category: radar.CategoryEvaluate},
		{ID: "five", Category: radar.CategoryEvaluate},
		{ID: "six", Category: radar.CategoryEvaluate},
	}

	placed := Assign(tools, testRings(), 100, 100)
	if len(placed) != len(tools) {
		t.Fatalf("len(placed) = %d, want %d", len(placed), len(tools))
	}

	for i := 1; i < len(placed); i++ {
		if placed[i].Position.Angle <= placed[i-1].Position.Angle {
			t.Errorf("angle order inverted: %q (%v) <= %q (%v)",
				placed[i].ID, placed[i].Position.Angle,
				placed[i-1].ID, placed[i-1].Position.Angle)
		}
	}
}

func TestAssignCompleteness(t *testing.T) {
	tools := []radar.Tool{
		{ID: "kept-1", Title: "Kept 1", Description: "desc", URL: "https://example.com", Category: radar.CategoryTrial},
		{ID: "dropped", Title: "Dropped", Category: radar.Category("hold")},
		{ID: "kept-2", Title: "Kept 2", Category: radar.CategoryAdopt,
			TeamPosition: "used in CI", AIPosition: "recommended",
			Reviewer: &radar.Reviewer{Name: "Sam", PhotoURL: "https://example.com/sam.png"}},
	}

	placed := Assign(tools, testRings(), 100, 100)
	if len(placed) != 2 {
		t.Fatalf("len(placed) = %d, want 2 (unrecognized category dropped)", len(placed))
	}

	byID := make(map[string]radar.PlacedTool, len(placed))
	for _, p := range placed {
		byID[p.ID] = p
	}
	if _, ok := byID["dropped"]; ok {
		t.Error("tool with unrecognized category was placed")
	}

	// Original fields survive unchanged.
	kept := byID["kept-2"]
	if kept.Title != "Kept 2" || kept.TeamPosition != "used in CI" || kept.AIPosition != "recommended" {
		t.Errorf("placed tool fields mutated: %+v", kept.Tool)
	}
	if kept.Reviewer == nil || kept.Reviewer.Name != "Sam" {
		t.Errorf("reviewer not preserved: %+v", kept.Reviewer)
	}
}

func TestAssignQuadrantOnly(t *testing.T) {
	tools := []radar.Tool{
		{ID: "q1", Category: radar.CategoryAdopt},
		{ID: "q2", Category: radar.CategoryTrial},
		{ID: "q3", Category: radar.CategoryEvaluate},
		{ID: "q4", Category: radar.CategoryAware},
		{ID: "q5", Category: radar.CategoryAware},
	}

	const cx, cy = 100.0, 100.0
	for _, p := range Assign(tools, testRings(), cx, cy) {
		if p.Position.X > cx {
			t.Errorf("tool %q x = %v, want <= %v", p.ID, p.Position.X, cx)
		}
		if p.Position.Y > cy {
			t.Errorf("tool %q y = %v, want <= %v", p.ID, p.Position.Y, cy)
		}
	}
}

func TestAssignTrialScenario(t *testing.T) {
	tools := []radar.Tool{
		{ID: "a", Category: radar.CategoryTrial},
		{ID: "b", Category: radar.CategoryTrial},
		{ID: "c", Category: radar.CategoryTrial},
	}

	placed := Assign(tools, testRings(), 100, 100)
	if len(placed) != 3 {
		t.Fatalf("len(placed) = %d, want 3", len(placed))
	}

	step := math.Pi / 2 / 4
	jitter := 0.3 * step
	for i, p := range placed {
		base := float64(i+1) * step
		if math.Abs(p.Position.Angle-base) > jitter {
			t.Errorf("tool %q angle = %v, want %v ± %v", p.ID, p.Position.Angle, base, jitter)
		}
		if p.Position.Radius < 31 || p.Position.Radius >= 39 {
			t.Errorf("tool %q radius = %v, want within [31, 39)", p.ID, p.Position.Radius)
		}
		if p.Position.X >= 100 || p.Position.Y >= 100 {
			t.Errorf("tool %q at (%v, %v), want strictly inside quadrant", p.ID, p.Position.X, p.Position.Y)
		}
	}
}

func TestAssignEmptyInput(t *testing.T) {
	placed := Assign(nil, testRings(), 100, 100)
	if len(placed) != 0 {
		t.Errorf("len(placed) = %d, want 0", len(placed))
	}
}

func TestAssignSingleAdoptTool(t *testing.T) {
	tools := []radar.Tool{{ID: "solo", Category: radar.CategoryAdopt}}

	placed := Assign(tools, testRings(), 100, 100)
	if len(placed) != 1 {
		t.Fatalf("len(placed) = %d, want 1", len(placed))
	}

	p := placed[0]
	midline := math.Pi / 4
	jitter := 0.3 * math.Pi / 4
	if math.Abs(p.Position.Angle-midline) > jitter {
		t.Errorf("angle = %v, want %v ± %v", p.Position.Angle, midline, jitter)
	}
	if p.Position.Radius < 7.5 || p.Position.Radius >= 17.5 {
		t.Errorf("radius = %v, want within [7.5, 17.5)", p.Position.Radius)
	}
}

func TestAssignEmptyCategoryDoesNotAffectOthers(t *testing.T) {
	// A category with zero tools contributes nothing and leaves other
	// categories' angle steps unchanged.
	solo := []radar.Tool{{ID: "only", Category: radar.CategoryAware}}
	mixed := []radar.Tool{
		{ID: "only", Category: radar.CategoryAware},
		{ID: "other", Category: radar.Category("unknown")},
	}

	a := Assign(solo, testRings(), 100, 100)
	b := Assign(mixed, testRings(), 100, 100)

	if len(a) != 1 || len(b) != 1 {
		t.Fatalf("len = %d, %d, want 1, 1", len(a), len(b))
	}
	if a[0].Position != b[0].Position {
		t.Errorf("positions differ: %+v vs %+v", a[0].Position, b[0].Position)
	}
}

func TestAssignOutputOrder(t *testing.T) {
	// Output is ordered by ring order, then input order within a category.
	tools := []radar.Tool{
		{ID: "aware-1", Category: radar.CategoryAware},
		{ID: "adopt-1", Category: radar.CategoryAdopt},
		{ID: "aware-2", Category: radar.CategoryAware},
		{ID: "trial-1", Category: radar.CategoryTrial},
	}

	placed := Assign(tools, testRings(), 100, 100)
	want := []string{"adopt-1", "trial-1", "aware-1", "aware-2"}

	if len(placed) != len(want) {
		t.Fatalf("len(placed) = %d, want %d", len(placed), len(want))
	}
	for i, id := range want {
		if placed[i].ID != id {
			t.Errorf("placed[%d].ID = %q, want %q", i, placed[i].ID, id)
		}
	}
}

func TestAssignDoesNotMutateInput(t *testing.T) {
	tools := []radar.Tool{
		{ID: "x", Title: "X", Category: radar.CategoryTrial},
		{ID: "y", Title: "Y", Category: radar.CategoryAdopt},
	}
	snapshot := make([]radar.Tool, len(tools))
	copy(snapshot, tools)

	Assign(tools, testRings(), 100, 100)

	if !reflect.DeepEqual(tools, snapshot) {
		t.Error("Assign() mutated its input slice")
	}
}
