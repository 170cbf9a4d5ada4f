package grid

import (
	"fmt"

	"github.com/katalvlaran/nonogrid/cell"
)

// Grid is a fixed-size, row-major container of cell.Fill values addressed
// by Position. Dimensions never change after construction; cells start
// Blank (the Fill zero value).
type Grid struct {
	rows, cols int
	cells      []cell.Fill
}

// New constructs an all-Blank rows×cols Grid.
// Returns ErrEmptyGrid when either dimension is not positive.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{rows: rows, cols: cols, cells: make([]cell.Fill, rows*cols)}, nil
}

// FromCells constructs a Grid from a flat row-major buffer and a column
// count. The buffer is copied to ensure immutability of the caller's
// slice. Returns ErrEmptyGrid for an empty buffer or non-positive cols,
// and ErrRagged (wrapped with both sizes) when len(cells) does not divide
// evenly into cols. Complexity: O(len(cells)).
func FromCells(cells []cell.Fill, cols int) (*Grid, error) {
	if len(cells) == 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(cells)%cols != 0 {
		return nil, fmt.Errorf("%d cells into %d columns: %w", len(cells), cols, ErrRagged)
	}
	buf := make([]cell.Fill, len(cells))
	copy(buf, cells)

	return &Grid{rows: len(cells) / cols, cols: cols, cells: buf}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p lies within the grid. Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// index maps p to its row-major offset: Row*cols + Col. Complexity: O(1).
func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Get returns the fill at p, reporting ok=false out of bounds.
func (g *Grid) Get(p Position) (f cell.Fill, ok bool) {
	if !g.InBounds(p) {
		return cell.Blank, false
	}

	return g.cells[g.index(p)], true
}

// Set writes f at p, reporting false out of bounds (the grid is unchanged).
func (g *Grid) Set(p Position, f cell.Fill) bool {
	if !g.InBounds(p) {
		return false
	}
	g.cells[g.index(p)] = f

	return true
}

// MustAt returns the fill at p and panics out of bounds. Out-of-bounds
// direct indexing is a programming error, not a recoverable condition;
// callers that cannot guarantee bounds use Get.
func (g *Grid) MustAt(p Position) cell.Fill {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid: position (%d,%d) outside %d×%d grid", p.Row, p.Col, g.rows, g.cols))
	}

	return g.cells[g.index(p)]
}

// LineLen returns the length of line l: the column count for a row line,
// the row count for a column line. Complexity: O(1).
func (g *Grid) LineLen(l Line) int {
	if l.Axis == Rows {
		return g.cols
	}

	return g.rows
}
