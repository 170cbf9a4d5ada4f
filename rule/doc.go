// Package rule models the constraints of a nonogram: the ordered run
// sequence each line must realize, and the feasibility data derived
// from it.
//
// What:
//
//   - Rule holds one line's ordered colored runs, the line's fixed
//     length, cumulative prefix sums over run counts, and — lazily —
//     each run's earliest/latest feasible start window plus per-fill
//     feasible coverage.
//   - Rules bundles all row and column rules of a puzzle, builds them
//     from a structured run payload (FromRuns) or derives them from an
//     already-filled grid (FromGrid), and materializes an optional flat
//     grid payload (Grid) with strict size checking.
//
// Why:
//
//   - The solver classifies a line by comparing occupied cells against
//     run windows: a cell outside every same-fill window can belong to
//     no satisfying arrangement.
//   - Prefix sums answer "total run length within run sub-range [a,b)"
//     in O(1), which sizes rule displays without rescanning.
//   - MinRun aligns an on-screen rule cursor with the puzzle cursor.
//
// Constraint generation (GenerateConstraints):
//
//	Two linear passes. Left to right, each run's earliest start
//	accumulates the preceding runs' counts plus one mandatory blank gap
//	each; right to left, the symmetric pass yields the latest start.
//	The intersection of a run's [earliest, latest] window gives cells
//	forced to hold it regardless of slack; the union of all same-fill
//	windows gives that fill's full feasible coverage. Idempotent and
//	memoized: generated once per rule, reset only by cloning.
//
// Complexity:
//
//   - New: O(r) over the run count.
//   - GenerateConstraints: O(r + f) first call, O(1) after.
//   - Feasible / MinRun / FitsRun: O(r) worst case; LenWithin: O(1).
//
// Errors:
//
//   - ErrBadRun: a run with a non-color fill or a count < 1.
//   - ErrBadLineLen: a non-positive line length.
//   - ErrRuleTooLong: the rule's minimum required length exceeds the line.
//   - ErrNoRules: a Rules bundle missing row or column rules.
//   - ErrSizeMismatch: a flat grid payload whose cell count is not rows×cols.
package rule
