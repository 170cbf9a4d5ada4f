// Package grid provides the geometry primitives and the fixed-size
// row-major container a nonogram is edited in.
//
// What:
//
//   - Position addresses one cell by (Row, Col).
//   - Line identifies one row or column by axis and index; LinePosition
//     is an offset along a line. Lines are comparable and key uniformly
//     into one associative store regardless of axis.
//   - Grid stores cell.Fill values row-major with bounds-checked Get/Set
//     and a panicking MustAt for contract violations.
//   - Positions and LineFills yield lazy, finite, restartable traversal
//     sequences (no shared cursor state).
//
// Why:
//
//   - An editing action is a (Position, Fill) pair; the two lines through
//     the position are exactly what the solver revalidates.
//   - Loaders hand over flat buffers; FromCells rejects buffers whose
//     length does not divide evenly into the declared column count, so no
//     partially-built puzzle ever reaches the editor.
//
// Complexity:
//
//   - Get / Set / MustAt / LineLen / Offset: O(1).
//   - Positions: O(rows×cols) to drain; LineFills: O(line length).
//
// Errors:
//
//   - ErrEmptyGrid: requested dimensions have no rows or no columns.
//   - ErrRagged: a flat buffer does not divide evenly into columns.
package grid
