// Package nonogrid is an in-memory engine for editing and validating
// nonograms — picture logic puzzles governed by per-row and per-column
// run-length rules.
//
// 🚀 What is nonogrid?
//
//	A small, dependency-light library that brings together:
//		• Cell primitives: fills (blank, cross, N colors), runs, glyph mapping
//		• A fixed-size row-major grid with lazy position/line traversals
//		• Rules: run sequences per line with derived feasibility windows
//		• An incremental solver: per-line occupancy masks and three-valued
//		  validation (Valid / Invalid / Solved) updated after every edit
//
// ✨ Why choose nonogrid?
//
//   - Edit-time speed – one cell edit revalidates exactly two lines, O(line)
//   - Rock-solid guarantees – typed load errors, no partially-built puzzles
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – undo/redo replay through UpdateCell reaches the exact
//     same cached validation state as the original edit
//
// Under the hood, everything is organized under four subpackages:
//
//	cell/   — Fill, Run, glyph mapping and the run-length Runs iterator
//	grid/   — Position, Line, and the row-major Grid container
//	rule/   — Rule & Rules with feasibility windows and prefix sums
//	solver/ — the incremental per-line validation engine
//
// Quick ASCII example, a 1×5 line under the rule [(color 1) × 3]:
//
//	1 1 1 . .   →  Solved
//	1 1 1 1 .   →  Invalid (run longer than any rule run allows)
//
// Dive into each package's doc.go for the full contract and complexity notes.
package nonogrid
