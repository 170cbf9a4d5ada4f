package grid_test

import (
	"fmt"

	"github.com/katalvlaran/nonogrid/cell"
	"github.com/katalvlaran/nonogrid/grid"
)

// Example builds a 2×3 grid from a flat buffer and renders it with the
// glyph mapping, then reads the two lines through one cell.
func Example() {
	g, _ := grid.FromCells([]cell.Fill{
		cell.Color(1), cell.Color(1), cell.Cross,
		cell.Blank, cell.Color(2), cell.Blank,
	}, 3)

	for i := 0; i < g.Rows(); i++ {
		for f := range g.RowFills(i) {
			fmt.Printf("%c", f.Glyph())
		}
		fmt.Println()
	}

	p := grid.Position{Row: 1, Col: 1}
	row, col := grid.LinesThrough(p)
	fmt.Println("offset on row:", grid.Offset(row, p))
	fmt.Println("offset on col:", grid.Offset(col, p))

	// Output:
	// 11x
	// .2.
	// offset on row: 1
	// offset on col: 1
}
