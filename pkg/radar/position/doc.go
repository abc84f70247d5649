// Package position computes deterministic radar placements for tools.
//
// # Overview
//
// [Assign] partitions tools by category, spreads each category's tools
// evenly across the quadrant, and confines them radially to the category's
// ring. A small per-tool jitter derived from a stable hash of the tool ID
// replaces true randomness, so repeated passes over the same data are
// pixel-identical.
//
//	placed := position.Assign(tools, radar.DefaultRings(95), 100, 100)
//
// # Placement Rules
//
// Within a category of n tools, the quarter-turn is divided into n+1 equal
// steps and the i-th tool (1-indexed) gets a base angle of i×step, which
// guarantees one step of clearance from both quadrant edges. The hash jitter
// is bounded to 30% of one step, so the relative angular order of tools in a
// category always matches the input order. Radially, tools sit in the middle
// 40%-70% band of their ring's span and never touch ring boundaries.
//
// # Determinism
//
// Assign is a pure, total function: no I/O, no clock, no random source, no
// mutation of its inputs. It may be called repeatedly and concurrently
// without coordination.
package position
