package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nonogrid/cell"
	"github.com/katalvlaran/nonogrid/grid"
	"github.com/katalvlaran/nonogrid/rule"
	"github.com/katalvlaran/nonogrid/solver"
)

var c1, c2 = cell.Color(1), cell.Color(2)

// newPuzzle builds a solver and grid for the given run payload.
func newPuzzle(t *testing.T, rowRuns, colRuns [][]cell.Run) (*solver.Solver, *grid.Grid) {
	t.Helper()
	rs, err := rule.FromRuns(rowRuns, colRuns)
	require.NoError(t, err)
	g, err := grid.New(len(rowRuns), len(colRuns))
	require.NoError(t, err)
	s := solver.New()
	require.NoError(t, s.InsertRules(rs))

	return s, g
}

// oneRowPuzzle is the 1×5 puzzle with row rule [(C1,3)] used across the
// scenario tests; each of the first three columns expects one C1 cell.
func oneRowPuzzle(t *testing.T) (*solver.Solver, *grid.Grid) {
	t.Helper()

	return newPuzzle(t,
		[][]cell.Run{{{Fill: c1, Count: 3}}},
		[][]cell.Run{{{Fill: c1, Count: 1}}, {{Fill: c1, Count: 1}}, {{Fill: c1, Count: 1}}, nil, nil},
	)
}

//----------------------------------------------------------------------------//
// Editing scenarios
//----------------------------------------------------------------------------//

// TestScenario_SolveInvalidateUndo covers the core editing loop: fill the three
// rule cells → Solved; overfill a fourth → Invalid; undo it → Solved again.
func TestScenario_SolveInvalidateUndo(t *testing.T) {
	s, g := oneRowPuzzle(t)
	row := grid.Row(0)

	for col := 0; col < 3; col++ {
		require.NoError(t, s.UpdateCell(g, grid.Position{Row: 0, Col: col}, c1))
	}
	assert.Equal(t, solver.Solved, s.Get(row))

	require.NoError(t, s.UpdateCell(g, grid.Position{Row: 0, Col: 3}, c1))
	assert.Equal(t, solver.Invalid, s.Get(row))

	// Undo replays the stored before-fill through the same path.
	require.NoError(t, s.UpdateCell(g, grid.Position{Row: 0, Col: 3}, cell.Blank))
	assert.Equal(t, solver.Solved, s.Get(row))
}

// TestScenario_WrongColor covers a wrong-color edit: a 3×3 grid whose row 0
// expects a single C1; writing C2 there is an immediate contradiction.
func TestScenario_WrongColor(t *testing.T) {
	s, g := newPuzzle(t,
		[][]cell.Run{{{Fill: c1, Count: 1}}, nil, nil},
		[][]cell.Run{{{Fill: c1, Count: 1}}, nil, nil},
	)
	require.NoError(t, s.UpdateCell(g, grid.Position{Row: 0, Col: 0}, c2))
	assert.Equal(t, solver.Invalid, s.Get(grid.Row(0)))
	assert.Equal(t, solver.Invalid, s.Get(grid.Col(0)))
}

// TestScenario_ClearResets covers the reload path: after Clear, Get falls
// back to the default Valid outcome.
func TestScenario_ClearResets(t *testing.T) {
	s, g := oneRowPuzzle(t)
	require.NoError(t, s.UpdateCell(g, grid.Position{Row: 0, Col: 3}, c1))
	require.Equal(t, solver.Invalid, s.Get(grid.Row(0)))

	s.Clear()
	assert.Equal(t, solver.Valid, s.Get(grid.Row(0)))
	assert.Equal(t, solver.Valid, s.Get(grid.Col(3)))
}

// TestRoundTrip_RuleFillsSolve fills a multicolor line exactly per its
// rule (runs in order, one blank between them) and expects Solved.
func TestRoundTrip_RuleFillsSolve(t *testing.T) {
	// Row rule [(C1,2),(C2,1)] on a 4-cell line: 1 1 . 2
	s, g := newPuzzle(t,
		[][]cell.Run{{{Fill: c1, Count: 2}, {Fill: c2, Count: 1}}},
		[][]cell.Run{{{Fill: c1, Count: 1}}, {{Fill: c1, Count: 1}}, nil, {{Fill: c2, Count: 1}}},
	)
	require.NoError(t, s.UpdateCell(g, grid.Position{Row: 0, Col: 0}, c1))
	require.NoError(t, s.UpdateCell(g, grid.Position{Row: 0, Col: 1}, c1))
	assert.Equal(t, solver.Valid, s.Get(grid.Row(0)), "incomplete line stays Valid")

	require.NoError(t, s.UpdateCell(g, grid.Position{Row: 0, Col: 3}, c2))
	assert.Equal(t, solver.Solved, s.Get(grid.Row(0)))
	assert.Equal(t, solver.Solved, s.Get(grid.Col(0)))
}

// TestCrossesNeverContradict verifies crossing out cells is always safe:
// crosses carry no rule obligations.
func TestCrossesNeverContradict(t *testing.T) {
	s, g := oneRowPuzzle(t)
	require.NoError(t, s.UpdateCell(g, grid.Position{Row: 0, Col: 4}, cell.Cross))
	assert.Equal(t, solver.Valid, s.Get(grid.Row(0)))
	require.NoError(t, s.UpdateCell(g, grid.Position{Row: 0, Col: 4}, cell.Cross))
	assert.Equal(t, solver.Valid, s.Get(grid.Row(0)))
}

// TestSolvedThroughCrossGap verifies that crosses between colored blocks
// do not merge them: 1 x 1 solves [(C1,1),(C1,1)].
func TestSolvedThroughCrossGap(t *testing.T) {
	s, g := newPuzzle(t,
		[][]cell.Run{{{Fill: c1, Count: 1}, {Fill: c1, Count: 1}}},
		[][]cell.Run{{{Fill: c1, Count: 1}}, nil, {{Fill: c1, Count: 1}}},
	)
	require.NoError(t, s.UpdateCell(g, grid.Position{Row: 0, Col: 0}, c1))
	require.NoError(t, s.UpdateCell(g, grid.Position{Row: 0, Col: 1}, cell.Cross))
	require.NoError(t, s.UpdateCell(g, grid.Position{Row: 0, Col: 2}, c1))
	assert.Equal(t, solver.Solved, s.Get(grid.Row(0)))
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

// TestIdempotence applies the same edit twice; the second application
// must not change the stored validation.
func TestIdempotence(t *testing.T) {
	s, g := oneRowPuzzle(t)
	p := grid.Position{Row: 0, Col: 1}

	require.NoError(t, s.UpdateCell(g, p, c1))
	first := s.Get(grid.Row(0))
	require.NoError(t, s.UpdateCell(g, p, c1))
	assert.Equal(t, first, s.Get(grid.Row(0)))
	assert.Equal(t, first, s.Get(grid.Row(0)))
}

// TestMonotonicIsolation invalidates one line and checks the stored
// validation of unrelated, unedited lines never moves.
func TestMonotonicIsolation(t *testing.T) {
	s, g := newPuzzle(t,
		[][]cell.Run{{{Fill: c1, Count: 1}}, {{Fill: c1, Count: 1}}, nil},
		[][]cell.Run{{{Fill: c1, Count: 2}}, nil, nil},
	)
	require.NoError(t, s.UpdateCell(g, grid.Position{Row: 1, Col: 0}, c1))
	before := s.Get(grid.Row(1))

	// Contradict row 0 far from row 1's cells.
	require.NoError(t, s.UpdateCell(g, grid.Position{Row: 0, Col: 2}, c2))
	require.Equal(t, solver.Invalid, s.Get(grid.Row(0)))

	assert.Equal(t, before, s.Get(grid.Row(1)))
	assert.Equal(t, solver.Valid, s.Get(grid.Col(1)))
}

// TestMaskPopCountBound drives many edits and checks the invariant that
// no fill's occupancy count ever exceeds the line length.
func TestMaskPopCountBound(t *testing.T) {
	s, g := newPuzzle(t,
		[][]cell.Run{{{Fill: c1, Count: 2}}, {{Fill: c1, Count: 1}}, nil},
		[][]cell.Run{{{Fill: c1, Count: 1}}, {{Fill: c1, Count: 2}}, nil},
	)
	fills := []cell.Fill{c1, c2, cell.Cross, cell.Blank, c1, c1, cell.Blank, c2}
	i := 0
	for p := range g.Positions() {
		require.NoError(t, s.UpdateCell(g, p, fills[i%len(fills)]))
		i++
		for _, l := range []grid.Line{grid.Row(p.Row), grid.Col(p.Col)} {
			for _, f := range []cell.Fill{c1, c2, cell.Cross} {
				assert.LessOrEqual(t, s.MaskPopCount(l, f), s.LineLenFor(l))
			}
		}
	}
}

// TestMaskMirrorsGrid cross-checks the mask against the grid after a
// write/overwrite/erase cycle on one cell.
func TestMaskMirrorsGrid(t *testing.T) {
	s, g := oneRowPuzzle(t)
	p := grid.Position{Row: 0, Col: 2}

	require.NoError(t, s.UpdateCell(g, p, c1))
	assert.Equal(t, 1, s.MaskPopCount(grid.Col(2), c1))

	require.NoError(t, s.UpdateCell(g, p, c2))
	assert.Equal(t, 0, s.MaskPopCount(grid.Col(2), c1))
	assert.Equal(t, 1, s.MaskPopCount(grid.Col(2), c2))

	require.NoError(t, s.UpdateCell(g, p, cell.Blank))
	assert.Equal(t, 0, s.MaskPopCount(grid.Col(2), c1))
	assert.Equal(t, 0, s.MaskPopCount(grid.Col(2), c2))
}

//----------------------------------------------------------------------------//
// Error contract
//----------------------------------------------------------------------------//

func TestUpdateCell_Errors(t *testing.T) {
	s, g := oneRowPuzzle(t)

	err := s.UpdateCell(nil, grid.Position{}, c1)
	assert.ErrorIs(t, err, solver.ErrNilGrid)

	err = s.UpdateCell(g, grid.Position{Row: 9, Col: 0}, c1)
	assert.ErrorIs(t, err, solver.ErrOutOfBounds)

	// A grid larger than the inserted rule table trips ErrUnknownLine —
	// and leaves the grid unwritten.
	big, err := grid.New(2, 5)
	require.NoError(t, err)
	err = s.UpdateCell(big, grid.Position{Row: 1, Col: 0}, c1)
	assert.ErrorIs(t, err, solver.ErrUnknownLine)
	f, ok := big.Get(grid.Position{Row: 1, Col: 0})
	require.True(t, ok)
	assert.Equal(t, cell.Blank, f)
}

func TestInsertRules_Nil(t *testing.T) {
	assert.ErrorIs(t, solver.New().InsertRules(nil), solver.ErrNilRules)
}

func TestValidation_String(t *testing.T) {
	assert.Equal(t, "Valid", solver.Valid.String())
	assert.Equal(t, "Invalid", solver.Invalid.String())
	assert.Equal(t, "Solved", solver.Solved.String())
}
