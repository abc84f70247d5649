// Package flowboard renders datasets as category flow boards.
//
// # Overview
//
// This package produces board visualizations using Graphviz, where tools
// appear as boxes grouped into one cluster per assessment category. It's an
// alternative to the radar visualization for cases where a flat board view
// is preferred.
//
// # Usage
//
// Convert a dataset to DOT format, then render to SVG:
//
//	dot := flowboard.ToDOT(tools, flowboard.Options{Detailed: false})
//	svg, err := flowboard.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := flowboard.RenderPDF(dot)
//	png, err := flowboard.RenderPNG(dot, 2.0)  // 2x scale
//
// # Options
//
// The [Options] struct controls board generation:
//
//   - Detailed: When true, node labels include descriptions and reviewers
//   - Title: Optional board heading
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// The generated DOT uses left-to-right layout (rankdir=LR) with clusters
// ordered from the outermost category to the innermost, so the board reads
// in the direction tools move as a team gains confidence in them.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package flowboard
