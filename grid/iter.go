package grid

import (
	"iter"

	"github.com/katalvlaran/nonogrid/cell"
)

// Positions yields every cell position in row-major order. The sequence
// is lazy, finite, and restartable: each range starts from the beginning
// and no cursor state is shared between consumers.
func (g *Grid) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for r := 0; r < g.rows; r++ {
			for c := 0; c < g.cols; c++ {
				if !yield(Position{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// LineFills yields the fills along line l in offset order. A line index
// outside the grid yields an empty sequence. Lazy and restartable.
// Complexity: O(line length) to drain.
func (g *Grid) LineFills(l Line) iter.Seq[cell.Fill] {
	return func(yield func(cell.Fill) bool) {
		n := g.LineLen(l)
		for off := 0; off < n; off++ {
			f, ok := g.Get(At(l, LinePosition(off)))
			if !ok {
				return
			}
			if !yield(f) {
				return
			}
		}
	}
}

// RowFills yields the fills of row i left to right.
func (g *Grid) RowFills(i int) iter.Seq[cell.Fill] {
	return g.LineFills(Row(i))
}

// ColFills yields the fills of column i top to bottom.
func (g *Grid) ColFills(i int) iter.Seq[cell.Fill] {
	return g.LineFills(Col(i))
}
