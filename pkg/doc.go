// Package pkg provides the core libraries for toolradar visualizations.
//
// # Overview
//
// Toolradar renders a team's tool assessments as a quarter-circle radar
// widget: four concentric bands (adopt, trial, evaluate, aware) centered on
// the bottom-right corner of the frame, with one dot per recognized tool.
// Placement is fully deterministic, derived from each tool's ID, so the same
// dataset always renders the same picture.
//
// The typical data flow:
//
//	TOML dataset (local file, URL, or shared store)
//	         ↓
//	    [dataset] package (load + validate)
//	         ↓
//	    [radar/position] package (deterministic placement)
//	         ↓
//	    [render/radarview] or [render/flowboard] (SVG/PNG/PDF output)
//
// # Main Packages
//
// [radar] - The data model: categories, tools, ring sets, layouts.
// [radar/position] - The Position Assigner, a total deterministic function
// from tools and rings to placements.
// [radar/geometry] - Polar/Cartesian conversion and SVG arc path helpers.
//
// [dataset] - TOML dataset loading, HTTP fetching with retry, and a
// MongoDB-backed store for sharing datasets between teams.
//
// [render/radarview] - The radar SVG sink with pluggable light/dark styles,
// hover popups, and an optional embedded search box.
// [render/flowboard] - An alternative category flow board rendered through
// Graphviz.
//
// [pipeline] - Orchestration (load → position → render) with per-stage
// caching, used by both the CLI and the preview server.
//
// [cache] - Cache interface with file, null, and Redis backends plus
// content-hash key derivation.
//
// [errors], [httputil], [observability], [buildinfo] - Ambient support:
// structured error codes, HTTP retry, pipeline hooks, and version info.
//
// [radar]: https://pkg.go.dev/github.com/matzehuels/toolradar/pkg/radar
// [radar/position]: https://pkg.go.dev/github.com/matzehuels/toolradar/pkg/radar/position
// [radar/geometry]: https://pkg.go.dev/github.com/matzehuels/toolradar/pkg/radar/geometry
// [dataset]: https://pkg.go.dev/github.com/matzehuels/toolradar/pkg/dataset
// [render/radarview]: https://pkg.go.dev/github.com/matzehuels/toolradar/pkg/render/radarview
// [render/flowboard]: https://pkg.go.dev/github.com/matzehuels/toolradar/pkg/render/flowboard
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/toolradar/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/toolradar/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/toolradar/pkg/errors
// [httputil]: https://pkg.go.dev/github.com/matzehuels/toolradar/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/matzehuels/toolradar/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/toolradar/pkg/buildinfo
package pkg
