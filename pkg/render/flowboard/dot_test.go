package flowboard

import (
	"strings"
	"testing"

	"github.com/matzehuels/toolradar/pkg/radar"
)

func sampleTools() []radar.Tool {
	return []radar.Tool{
		{ID: "linter", Title: "Linter", Category: radar.CategoryAdopt},
		{ID: "profiler", Title: "Profiler", Category: radar.CategoryTrial,
			Description: "CPU and memory profiles",
			Reviewer:    &radar.Reviewer{Name: "Kim"}},
		{ID: "search", Title: "Search", Category: radar.CategoryAware},
		{ID: "legacy", Title: "Legacy", Category: "hold"},
	}
}

func TestToDOTStructure(t *testing.T) {
	dot := ToDOT(sampleTools(), Options{})

	wants := []string{
		"digraph G {",
		"rankdir=LR;",
		"subgraph cluster_adopt",
		"subgraph cluster_trial",
		"subgraph cluster_evaluate",
		"subgraph cluster_aware",
		`label="ADOPT";`,
		`"linter" [label="Linter"];`,
		`"profiler" [label="Profiler"];`,
	}
	for _, want := range wants {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q\nGot:\n%s", want, dot)
		}
	}
}

func TestToDOTDropsUnrecognizedCategories(t *testing.T) {
	dot := ToDOT(sampleTools(), Options{})

	if strings.Contains(dot, "legacy") {
		t.Error("ToDOT() should drop tools with unrecognized categories")
	}
}

func TestToDOTClusterOrder(t *testing.T) {
	dot := ToDOT(sampleTools(), Options{})

	aware := strings.Index(dot, "cluster_aware")
	adopt := strings.Index(dot, "cluster_adopt")
	if aware == -1 || adopt == -1 {
		t.Fatal("ToDOT() missing clusters")
	}
	if aware > adopt {
		t.Error("ToDOT() should emit the outermost category cluster first")
	}

	// Invisible edges pin the order across non-empty clusters.
	if !strings.Contains(dot, `"search" -> "profiler" [style=invis];`) {
		t.Errorf("ToDOT() missing ordering edge\nGot:\n%s", dot)
	}
	if !strings.Contains(dot, `"profiler" -> "linter" [style=invis];`) {
		t.Errorf("ToDOT() missing ordering edge\nGot:\n%s", dot)
	}
}

func TestToDOTKeepsDatasetOrderWithinCluster(t *testing.T) {
	// Deliberately not alphabetical. The board must list tools in the
	// order the dataset declares them, same as the radar.
	tools := []radar.Tool{
		{ID: "terraform", Title: "Terraform", Category: radar.CategoryAdopt},
		{ID: "go-lint", Title: "Go Lint", Category: radar.CategoryAdopt},
		{ID: "k6", Title: "k6", Category: radar.CategoryAdopt},
	}
	dot := ToDOT(tools, Options{})

	terraform := strings.Index(dot, `"terraform"`)
	goLint := strings.Index(dot, `"go-lint"`)
	k6 := strings.Index(dot, `"k6"`)
	if terraform == -1 || goLint == -1 || k6 == -1 {
		t.Fatalf("ToDOT() missing nodes\nGot:\n%s", dot)
	}
	if !(terraform < goLint && goLint < k6) {
		t.Errorf("ToDOT() reordered tools within a cluster\nGot:\n%s", dot)
	}
}

func TestToDOTAnchorIsFirstDatasetTool(t *testing.T) {
	tools := []radar.Tool{
		{ID: "profiler", Title: "Profiler", Category: radar.CategoryTrial},
		{ID: "zz-top", Title: "ZZ Top", Category: radar.CategoryAdopt},
		{ID: "a-tool", Title: "A Tool", Category: radar.CategoryAdopt},
	}
	dot := ToDOT(tools, Options{})

	// zz-top comes first in the dataset, so it anchors the adopt cluster.
	if !strings.Contains(dot, `"profiler" -> "zz-top" [style=invis];`) {
		t.Errorf("ToDOT() should anchor clusters on the first dataset tool\nGot:\n%s", dot)
	}
}

func TestToDOTDetailed(t *testing.T) {
	plain := ToDOT(sampleTools(), Options{})
	if strings.Contains(plain, "Kim") {
		t.Error("plain labels should not include reviewers")
	}

	detailed := ToDOT(sampleTools(), Options{Detailed: true})
	for _, want := range []string{"CPU and memory profiles", "reviewed by Kim"} {
		if !strings.Contains(detailed, want) {
			t.Errorf("detailed ToDOT() output missing %q", want)
		}
	}
}

func TestToDOTTitle(t *testing.T) {
	dot := ToDOT(sampleTools(), Options{Title: "Platform Tools"})

	for _, want := range []string{`label="Platform Tools";`, "labelloc=t;"} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q", want)
		}
	}
}

func TestToDOTDeterministic(t *testing.T) {
	tools := sampleTools()
	if ToDOT(tools, Options{}) != ToDOT(tools, Options{}) {
		t.Error("ToDOT() should be deterministic")
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(nil, Options{})

	if !strings.Contains(dot, "digraph G {") || !strings.Contains(dot, "}") {
		t.Errorf("ToDOT() on empty input should still produce a valid graph\nGot:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="8pt" height="6pt" viewBox="0.00 0.00 120.75 80.25" xmlns="http://www.w3.org/2000/svg">`)
	out := string(normalizeViewBox(in))

	wants := []string{
		`viewBox="0 0 120.75 80.25"`,
		`width="121"`,
		`height="80"`,
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("normalizeViewBox() output missing %q\nGot: %s", want, out)
		}
	}

	// SVG without a viewBox passes through unchanged
	plain := []byte(`<svg>`)
	if string(normalizeViewBox(plain)) != `<svg>` {
		t.Error("normalizeViewBox() should pass through SVG without a viewBox")
	}
}
