// Package solver maintains the incremental per-line state that lets a
// nonogram editor decide, after every single-cell edit, whether the
// touched row and column remain consistent with their rules and whether
// either is now fully solved — without re-deriving the puzzle.
//
// What:
//
//   - Solver owns one state record per line: a private copy of the
//     line's Rule, a per-fill occupancy bitmask (one bit per cell the
//     fill currently occupies), the rule's memoized feasibility
//     constraints, and the last computed Validation.
//   - UpdateCell writes the new fill into the grid, flips the two O(1)
//     mask bits on the row and column through the position, lazily
//     generates constraints, and revalidates exactly those two lines.
//   - Get returns a line's stored outcome, defaulting to Valid for a
//     line never touched. Clear resets everything for a new puzzle.
//
// Why:
//
//   - Transient invalid states are an expected part of interactive
//     editing, so validation is a three-valued classification
//     (Valid / Invalid / Solved), never an error.
//   - Masks are an exact, O(1)-updated mirror of the grid, so per-edit
//     cost stays O(line length) on the two touched lines and the stored
//     validation of every unrelated line is untouched.
//   - Undo and redo replay before/after fills through the identical
//     UpdateCell path; replay is idempotent and deterministic.
//
// Validation outcomes:
//
//   - Invalid — some occupied maximal block of one fill fits no single
//     run of that fill (it lies outside every same-fill feasible window,
//     or exceeds the capacity of every covering run).
//   - Valid — no contradiction detected; the line may be incomplete.
//   - Solved — the occupied cells, run-length-encoded colors-only via
//     the same Runs mechanism used to derive rules, exactly equal the
//     rule's run sequence in order.
//
// Concurrency: none. A Solver is exclusively owned by one editing
// session and mutated by direct calls the caller serializes strictly in
// order; it is never a process-wide singleton.
//
// Complexity:
//
//   - UpdateCell: O(row length + column length).
//   - Get: O(1). InsertRules: O(lines). Clear: O(1).
//
// Errors:
//
//   - ErrNilGrid / ErrNilRules: nil collaborator passed in.
//   - ErrOutOfBounds: edit position outside the grid.
//   - ErrUnknownLine: edit on a line InsertRules never populated.
package solver
