package rule

import (
	"fmt"

	"github.com/katalvlaran/nonogrid/cell"
	"github.com/katalvlaran/nonogrid/grid"
)

// Rules bundles every row and column rule of one puzzle. Row count equals
// the grid's rows, column count its columns. Built once at load time and
// never mutated afterwards.
type Rules struct {
	rowRules []*Rule
	colRules []*Rule
}

// NewRules bundles pre-built row and column rules.
// Returns ErrNoRules when either side is empty.
func NewRules(rowRules, colRules []*Rule) (*Rules, error) {
	if len(rowRules) == 0 || len(colRules) == 0 {
		return nil, ErrNoRules
	}

	return &Rules{rowRules: rowRules, colRules: colRules}, nil
}

// FromRuns builds a Rules bundle from a structured run payload: one
// ordered {fill, count} list per row and per column. Row lines span
// len(colRuns) cells and column lines span len(rowRuns) cells. Per-line
// construction errors are wrapped with the offending line's identity.
// Complexity: O(total runs).
func FromRuns(rowRuns, colRuns [][]cell.Run) (*Rules, error) {
	if len(rowRuns) == 0 || len(colRuns) == 0 {
		return nil, ErrNoRules
	}
	rows := make([]*Rule, len(rowRuns))
	cols := make([]*Rule, len(colRuns))
	for i, runs := range rowRuns {
		r, err := New(runs, len(colRuns))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows[i] = r
	}
	for i, runs := range colRuns {
		c, err := New(runs, len(rowRuns))
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		cols[i] = c
	}

	return &Rules{rowRules: rows, colRules: cols}, nil
}

// FromGrid derives a Rules bundle from an already-filled grid by
// run-length-encoding the colored cells of every line (the Runs
// mechanism with non-colored suppression). Complexity: O(rows×cols).
func FromGrid(g *grid.Grid) (*Rules, error) {
	if g == nil {
		return nil, ErrNoRules
	}
	rows := make([]*Rule, g.Rows())
	for i := range rows {
		r, err := fromLine(g, grid.Row(i))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows[i] = r
	}
	cols := make([]*Rule, g.Cols())
	for i := range cols {
		c, err := fromLine(g, grid.Col(i))
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		cols[i] = c
	}

	return &Rules{rowRules: rows, colRules: cols}, nil
}

// fromLine derives one line's Rule from its current fills.
func fromLine(g *grid.Grid, l grid.Line) (*Rule, error) {
	var runs []cell.Run
	for run := range cell.Runs(g.LineFills(l), cell.WithColorsOnly()) {
		runs = append(runs, run)
	}

	return New(runs, g.LineLen(l))
}

// RowCount returns the number of row rules.
func (rs *Rules) RowCount() int { return len(rs.rowRules) }

// ColCount returns the number of column rules.
func (rs *Rules) ColCount() int { return len(rs.colRules) }

// Line returns the rule for line l, reporting ok=false when the index
// is outside the bundle.
func (rs *Rules) Line(l grid.Line) (r *Rule, ok bool) {
	switch l.Axis {
	case grid.Rows:
		if l.Index < 0 || l.Index >= len(rs.rowRules) {
			return nil, false
		}
		return rs.rowRules[l.Index], true
	default:
		if l.Index < 0 || l.Index >= len(rs.colRules) {
			return nil, false
		}
		return rs.colRules[l.Index], true
	}
}

// Grid materializes an optional flat grid payload delivered alongside a
// run document. Returns ErrSizeMismatch (wrapped with both cell counts)
// when the flattened payload does not equal rows×cols — no partially
// built puzzle is ever returned.
func (rs *Rules) Grid(flat []cell.Fill) (*grid.Grid, error) {
	want := rs.RowCount() * rs.ColCount()
	if len(flat) != want {
		return nil, fmt.Errorf("want %d cells, got %d: %w", want, len(flat), ErrSizeMismatch)
	}

	return grid.FromCells(flat, rs.ColCount())
}
