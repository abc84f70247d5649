// Package radarview renders radar layouts as interactive SVG documents.
//
// # Overview
//
// A radar layout places each tool as a dot inside a quarter-circle divided
// into concentric category bands. This package turns a computed
// [radar.Layout] into final output formats:
//
//   - SVG: Scalable vector graphics with interactivity
//   - PDF: Print-ready output (requires rsvg-convert)
//   - PNG: Raster image output (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] produces interactive SVG with:
//
//   - Category ring bands with boundary arcs and headings
//   - Tool dots with hover highlighting
//   - Optional popups showing tool details and assessments
//   - Optional embedded filter box
//
// Basic usage:
//
//	svg := radarview.RenderSVG(layout,
//	    radarview.WithStyle(styles.Dark()),
//	    radarview.WithPopups(),
//	)
//
// # SVG Options
//
//   - [WithStyle]: Visual style ([styles.Light] or [styles.Dark])
//   - [WithPopups]: Enable hover popups with tool details
//   - [WithSearch]: Embed an interactive filter box
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] render the layout as PDF/PNG by first
// generating SVG, then converting via [render.ToPDF] and [render.ToPNG]:
//
//	pdf, err := radarview.RenderPDF(layout, opts...)
//	png, err := radarview.RenderPNG(layout, radarview.WithScale(2), opts...)
//
// These require librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// The conversion functions are shared with [flowboard] so both visualization
// types can export to PDF/PNG.
//
// [render.ToPDF]: github.com/matzehuels/toolradar/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/toolradar/pkg/render.ToPNG
// [flowboard]: github.com/matzehuels/toolradar/pkg/render/flowboard
// [radar.Layout]: github.com/matzehuels/toolradar/pkg/radar.Layout
package radarview
