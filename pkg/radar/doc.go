// Package radar defines the core domain model for tool-assessment radars.
//
// # Overview
//
// A radar visualizes a small collection of development-tool assessments.
// Each [Tool] carries a [Category] describing its adoption stage; the four
// categories map to concentric rings, innermost to outermost:
//
//	adopt < trial < evaluate < aware
//
// The package provides:
//
//   - [Tool], [Reviewer]: immutable input records loaded from a dataset
//   - [Category]: the fixed ordered assessment enumeration
//   - [Ring], [RingSet]: per-category radial bounds with nesting invariants
//   - [PlacedTool], [Position]: tools with computed placement
//   - [Layout]: the unified serialization format for computed visualizations
//
// Placement itself is computed by the position subpackage; drawing primitives
// live in the geometry subpackage. This package holds only data and the
// serialization round-trip.
//
// # Coordinate Convention
//
// All placement happens in the quadrant extending up and left from the
// configured center point: for every placed tool, x ≤ cx and y ≤ cy in a
// y-down coordinate space. Renderers must apply the same convention.
package radar
