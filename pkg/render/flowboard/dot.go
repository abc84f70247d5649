package flowboard

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/toolradar/pkg/radar"
	"github.com/matzehuels/toolradar/pkg/render"
)

// Options configures flow board rendering.
type Options struct {
	// Detailed includes descriptions and reviewer names in node labels.
	// When false, only the tool title is shown.
	Detailed bool

	// Title sets the board heading ("" for none).
	Title string
}

// clusterFills maps each category to its cluster background.
var clusterFills = map[radar.Category]string{
	radar.CategoryAdopt:    "#e8f5e9",
	radar.CategoryTrial:    "#e3f2fd",
	radar.CategoryEvaluate: "#fff8e1",
	radar.CategoryAware:    "#f3e5f5",
}

// ToDOT converts a dataset to Graphviz DOT format for flow board visualization.
// Tools are grouped into one cluster per category, ordered outermost category
// first so the board reads aware -> evaluate -> trial -> adopt, the direction
// tools move as confidence grows. Within a cluster, tools keep their dataset
// order, matching the radar view. Tools with unrecognized categories are
// dropped. The resulting DOT string can be rendered using [RenderSVG],
// [RenderPDF], or [RenderPNG].
func ToDOT(tools []radar.Tool, opts Options) string {
	byCategory := make(map[radar.Category][]radar.Tool)
	for _, t := range tools {
		if !t.Category.Valid() {
			continue
		}
		byCategory[t.Category] = append(byCategory[t.Category], t)
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Title)
		buf.WriteString("  labelloc=t;\n")
		buf.WriteString("  fontsize=20;\n")
	}
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.8;\n")
	buf.WriteString("  nodesep=0.3;\n")

	// Outermost first so clusters read left to right toward adoption.
	order := radar.Categories()
	slices.Reverse(order)

	var anchors []string
	for _, c := range order {
		group := byCategory[c]

		buf.WriteString("\n")
		fmt.Fprintf(&buf, "  subgraph cluster_%s {\n", c)
		fmt.Fprintf(&buf, "    label=%q;\n", strings.ToUpper(string(c)))
		fmt.Fprintf(&buf, "    style=filled;\n    color=%q;\n", clusterFills[c])

		for _, t := range group {
			label := fmtLabel(t, opts.Detailed)
			fmt.Fprintf(&buf, "    %q [label=%q];\n", t.ID, label)
		}
		buf.WriteString("  }\n")

		if len(group) > 0 {
			anchors = append(anchors, group[0].ID)
		}
	}

	// Invisible edges pin the cluster order.
	buf.WriteString("\n")
	for i := 0; i+1 < len(anchors); i++ {
		fmt.Fprintf(&buf, "  %q -> %q [style=invis];\n", anchors[i], anchors[i+1])
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(t radar.Tool, detailed bool) string {
	label := t.Title
	if label == "" {
		label = t.ID
	}
	if !detailed {
		return label
	}

	parts := []string{label}
	if t.Description != "" {
		parts = append(parts, t.Description)
	}
	if t.Reviewer != nil && t.Reviewer.Name != "" {
		parts = append(parts, "reviewed by "+t.Reviewer.Name)
	}
	return strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
