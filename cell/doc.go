// Package cell defines the atomic values a nonogram is made of: the Fill
// of a single grid cell, the Run pairing a fill with a repeat count, and
// the Runs iterator that run-length-encodes a sequence of fills.
//
// What:
//
//   - Fill is Blank (zero value), Cross, or one of N colors (Color).
//   - Fills map to and from single display glyphs for rendering and
//     keyboard entry (digits, letters, '.', 'x').
//   - Run is a (Fill, Count) pair; an ordered run sequence forms a rule.
//   - Runs lazily coalesces consecutive equal fills into runs, optionally
//     dropping non-colored (Blank/Cross) runs entirely.
//
// Why:
//
//   - Rules constrain only colored cells, so rule derivation wants the
//     colors-only encoding; suppressed runs never merge colored runs
//     across the gap they occupied.
//   - Expand inverts the encoding, giving round-trip guarantees that the
//     solver's Solved detection relies on.
//
// Complexity:
//
//   - Runs / RunsOf: O(n) over the input sequence, O(1) extra memory.
//   - Expand: O(total run length).
//   - Glyph / FillFromGlyph: O(1).
//
// Errors: none. Fill construction is total; unknown glyphs report ok=false.
package cell
