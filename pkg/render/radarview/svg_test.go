package radarview

import (
	"strings"
	"testing"

	"github.com/matzehuels/toolradar/pkg/radar"
	"github.com/matzehuels/toolradar/pkg/render/radarview/styles"
)

func testLayout() *radar.Layout {
	return &radar.Layout{
		VizType: radar.VizTypeRadar,
		Width:   400,
		Height:  300,
		Title:   "Team Radar",
		CenterX: 380,
		CenterY: 280,
		Rings:   radar.DefaultRings(95),
		Placements: []radar.PlacedTool{
			{
				Tool: radar.Tool{
					ID:          "go-lint",
					Title:       "Go Lint",
					Description: "Static analysis",
					URL:         "https://example.com/lint",
					Category:    radar.CategoryAdopt,
					Reviewer:    &radar.Reviewer{Name: "Sam"},
				},
				Position: radar.Position{X: 371.2, Y: 271.5, Angle: 0.78, Radius: 12.4},
			},
			{
				Tool: radar.Tool{
					ID:       "vector-db",
					Title:    "Vector DB",
					Category: radar.CategoryTrial,
				},
				Position: radar.Position{X: 355.0, Y: 260.1, Angle: 0.6, Radius: 32.0},
			},
		},
	}
}

func TestRenderSVGStructure(t *testing.T) {
	svg := string(RenderSVG(testLayout()))

	wants := []string{
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 400.0 300.0"`,
		`id="ring-adopt"`,
		`id="ring-trial"`,
		`id="ring-evaluate"`,
		`id="ring-aware"`,
		`id="dot-go-lint"`,
		`id="dot-vector-db"`,
		`<a href="https://example.com/lint"`,
		`Team Radar`,
		`class="dot-text"`,
		`function highlight(ids)`,
		`</svg>`,
	}
	for _, want := range wants {
		if !strings.Contains(svg, want) {
			t.Errorf("RenderSVG() output missing %q", want)
		}
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	l := testLayout()
	a := RenderSVG(l, WithPopups(), WithSearch())
	b := RenderSVG(l, WithPopups(), WithSearch())
	if string(a) != string(b) {
		t.Error("RenderSVG() should be deterministic for the same layout")
	}
}

func TestRenderSVGPopups(t *testing.T) {
	l := testLayout()

	withoutPopups := string(RenderSVG(l))
	if strings.Contains(withoutPopups, `class="popup"`) {
		t.Error("popups should be absent by default")
	}

	withPopups := string(RenderSVG(l, WithPopups()))
	for _, want := range []string{
		`class="popup"`,
		`data-for="go-lint"`,
		`Static analysis`,
		`Reviewed by Sam`,
	} {
		if !strings.Contains(withPopups, want) {
			t.Errorf("RenderSVG(WithPopups()) output missing %q", want)
		}
	}
}

func TestRenderSVGSearch(t *testing.T) {
	l := testLayout()

	withoutSearch := string(RenderSVG(l))
	if strings.Contains(withoutSearch, `class="search-input"`) {
		t.Error("search box should be absent by default")
	}

	withSearch := string(RenderSVG(l, WithSearch()))
	for _, want := range []string{`<foreignObject`, `class="search-input"`, `Filter tools`} {
		if !strings.Contains(withSearch, want) {
			t.Errorf("RenderSVG(WithSearch()) output missing %q", want)
		}
	}
}

func TestRenderSVGSearchMatchesTitles(t *testing.T) {
	svg := string(RenderSVG(testLayout(), WithSearch()))

	// Dots carry the tool title so a query like "go lint" filters the dot
	// and its label together, not just the label.
	wants := []string{
		`data-label="Go Lint"`,
		`data-label="Vector DB"`,
		`d.dataset.label`,
	}
	for _, want := range wants {
		if !strings.Contains(svg, want) {
			t.Errorf("RenderSVG(WithSearch()) output missing %q", want)
		}
	}
}

func TestRenderSVGDarkStyle(t *testing.T) {
	l := testLayout()
	svg := string(RenderSVG(l, WithStyle(styles.Dark())))

	if !strings.Contains(svg, `fill="#1c1c1e"`) {
		t.Error("dark style should use the dark background")
	}
}

func TestRenderSVGOpenOutermost(t *testing.T) {
	l := testLayout()
	bounded := string(RenderSVG(l))

	l.Rings.OpenOutermost = true
	open := string(RenderSVG(l))

	if open == bounded {
		t.Error("open outermost ring should change the rendered output")
	}

	// The outermost boundary arc at r=95 disappears when open.
	outerArc := `A 95.00 95.00`
	if strings.Count(open, outerArc) >= strings.Count(bounded, outerArc) {
		t.Error("open outermost ring should drop its boundary arc")
	}
}

func TestRenderSVGEmptyLayout(t *testing.T) {
	l := &radar.Layout{
		VizType: radar.VizTypeRadar,
		Width:   200,
		Height:  200,
		CenterX: 190,
		CenterY: 190,
		Rings:   radar.DefaultRings(95),
	}

	svg := string(RenderSVG(l))
	if !strings.Contains(svg, "</svg>") {
		t.Error("empty layout should still render a complete document")
	}
	if strings.Contains(svg, `class="dot"`) {
		t.Error("empty layout should render no dots")
	}
}
