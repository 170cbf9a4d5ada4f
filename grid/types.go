// Package grid defines geometry types and sentinel errors for the
// grid subpackage of github.com/katalvlaran/nonogrid.
package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates requested dimensions with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrRagged indicates a flat cell buffer whose length does not divide
	// evenly into the declared column count.
	ErrRagged = errors.New("grid: cell count does not divide into columns")
)

// Position addresses one grid cell by row and column. Immutable value type.
type Position struct {
	Row, Col int
}

// Axis distinguishes row lines from column lines.
type Axis uint8

const (
	// Rows marks a Line that runs horizontally (indexed by row).
	Rows Axis = iota
	// Cols marks a Line that runs vertically (indexed by column).
	Cols
)

// Line identifies one row or column: a two-variant tagged value carrying
// an index, comparable and usable as a map key.
type Line struct {
	Axis  Axis
	Index int
}

// Row returns the Line for row i.
func Row(i int) Line {
	return Line{Axis: Rows, Index: i}
}

// Col returns the Line for column i.
func Col(i int) Line {
	return Line{Axis: Cols, Index: i}
}

// LinePosition is a 0-based offset along a line: the column offset on a
// row line, the row offset on a column line.
type LinePosition int

// LinesThrough returns the row line and column line passing through p.
func LinesThrough(p Position) (row, col Line) {
	return Row(p.Row), Col(p.Col)
}

// Offset returns p's offset along line l. The caller guarantees p lies
// on l; Offset does not verify it.
func Offset(l Line, p Position) LinePosition {
	if l.Axis == Rows {
		return LinePosition(p.Col)
	}

	return LinePosition(p.Row)
}

// At returns the Position at offset off along line l.
func At(l Line, off LinePosition) Position {
	if l.Axis == Rows {
		return Position{Row: l.Index, Col: int(off)}
	}

	return Position{Row: int(off), Col: l.Index}
}
