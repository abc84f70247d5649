// Package render provides visualization rendering for tool assessment data.
//
// # Overview
//
// This package contains the rendering pipeline that transforms positioned
// tool layouts into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Radar visualization (in [radarview] subpackage)
//   - Flow boards (in [flowboard] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). These are used by both
// radar and flow board renderers.
//
//	svg := radarview.RenderSVG(layout, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Radar Visualization
//
// The [radarview] subpackage renders assessment layouts as quarter-circle
// radars where each concentric ring band holds one assessment category and
// each tool appears as a dot at its assigned position. This is Toolradar's
// signature visualization style.
//
// Visual styling is pluggable via [radarview/styles], which ships light and
// dark themes.
//
// # Flow Boards
//
// The [flowboard] subpackage renders datasets as category boards using
// Graphviz. Tools appear as boxes grouped into one cluster per category.
//
//	dot := flowboard.ToDOT(tools, flowboard.Options{})
//	svg, err := flowboard.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//
// [radarview]: github.com/matzehuels/toolradar/pkg/render/radarview
// [radarview/styles]: github.com/matzehuels/toolradar/pkg/render/radarview/styles
// [flowboard]: github.com/matzehuels/toolradar/pkg/render/flowboard
package render
