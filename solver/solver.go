package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nonogrid/cell"
	"github.com/katalvlaran/nonogrid/grid"
	"github.com/katalvlaran/nonogrid/rule"
)

// Sentinel errors for solver operations.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to UpdateCell.
	ErrNilGrid = errors.New("solver: grid is nil")
	// ErrNilRules indicates a nil *rule.Rules was passed to InsertRules.
	ErrNilRules = errors.New("solver: rules are nil")
	// ErrOutOfBounds indicates an edit position outside the grid.
	ErrOutOfBounds = errors.New("solver: position outside grid")
	// ErrUnknownLine indicates an edit touching a line that InsertRules
	// never populated (rule table and grid are out of step).
	ErrUnknownLine = errors.New("solver: no rule inserted for line")
)

// Validation is the three-valued outcome of validating one line's
// occupied cells against its rule. The zero value is Valid: an untouched
// line carries no contradiction.
type Validation uint8

const (
	// Valid means no contradiction was detected; the line may still be
	// incomplete or ambiguous.
	Valid Validation = iota
	// Invalid means some occupied cell can belong to no arrangement
	// satisfying the rule.
	Invalid
	// Solved means the occupied cells realize the rule exactly.
	Solved
)

// String renders the outcome for diagnostics.
func (v Validation) String() string {
	switch v {
	case Invalid:
		return "Invalid"
	case Solved:
		return "Solved"
	default:
		return "Valid"
	}
}

// Solver tracks per-line occupancy masks, memoized feasibility
// constraints, and validation outcomes for one open puzzle. One Solver
// per editing session, passed by reference into each call. Construct
// with New; the zero value is usable after InsertRules.
type Solver struct {
	lines map[grid.Line]*lineState
}

// lineState is everything the solver caches for a single line.
type lineState struct {
	rule   *rule.Rule
	length int
	// masks maps each fill to its occupancy bitset: bit i is set exactly
	// when offset i of this line currently holds that fill.
	masks   map[cell.Fill][]uint64
	outcome Validation
}

// New returns an empty Solver awaiting InsertRules.
func New() *Solver {
	return &Solver{lines: make(map[grid.Line]*lineState)}
}

// InsertRules populates the per-line rule table once at puzzle load,
// discarding any previous state. Each line receives its own Rule copy so
// constraint memoization stays per-line. Returns ErrNilRules on nil.
func (s *Solver) InsertRules(rs *rule.Rules) error {
	if rs == nil {
		return ErrNilRules
	}
	s.Clear()
	for i := 0; i < rs.RowCount(); i++ {
		s.insertLine(grid.Row(i), rs)
	}
	for i := 0; i < rs.ColCount(); i++ {
		s.insertLine(grid.Col(i), rs)
	}

	return nil
}

// insertLine seeds the state record for one line.
func (s *Solver) insertLine(l grid.Line, rs *rule.Rules) {
	r, ok := rs.Line(l)
	if !ok {
		return
	}
	s.lines[l] = &lineState{
		rule:   r.Clone(),
		length: r.LineLen(),
		masks:  make(map[cell.Fill][]uint64),
	}
}

// Clear resets all cached state wholesale: rules, masks, memoized
// constraints, and outcomes. Call before loading a new puzzle.
func (s *Solver) Clear() {
	s.lines = make(map[grid.Line]*lineState)
}

// Get returns the last computed validation outcome for line l,
// defaulting to Valid when the line was never touched. Complexity: O(1).
func (s *Solver) Get(l grid.Line) Validation {
	ls, ok := s.lines[l]
	if !ok {
		return Valid
	}

	return ls.outcome
}

// UpdateCell applies one editing action: it writes f at p, mirrors the
// change into the row and column masks through p (two O(1) bit flips
// per line), ensures both lines' feasibility constraints exist, and
// revalidates exactly those two lines, storing the outcomes.
//
// The grid is written only after every precondition holds, so a failed
// update leaves grid and solver in step. Undo/redo replay their stored
// before/after fills through this same path.
// Complexity: O(row length + column length).
func (s *Solver) UpdateCell(g *grid.Grid, p grid.Position, f cell.Fill) error {
	if g == nil {
		return ErrNilGrid
	}
	if s.lines == nil {
		s.lines = make(map[grid.Line]*lineState)
	}
	old, ok := g.Get(p)
	if !ok {
		return fmt.Errorf("(%d,%d) in %d×%d: %w", p.Row, p.Col, g.Rows(), g.Cols(), ErrOutOfBounds)
	}
	rowLine, colLine := grid.LinesThrough(p)
	rowState, ok := s.lines[rowLine]
	if !ok {
		return fmt.Errorf("row %d: %w", rowLine.Index, ErrUnknownLine)
	}
	colState, ok := s.lines[colLine]
	if !ok {
		return fmt.Errorf("column %d: %w", colLine.Index, ErrUnknownLine)
	}

	g.Set(p, f)
	for _, t := range []struct {
		ls  *lineState
		off grid.LinePosition
	}{
		{rowState, grid.Offset(rowLine, p)},
		{colState, grid.Offset(colLine, p)},
	} {
		if old != cell.Blank {
			t.ls.clearBit(old, t.off)
		}
		if f != cell.Blank {
			t.ls.setBit(f, t.off)
		}
		t.ls.rule.GenerateConstraints()
		t.ls.outcome = t.ls.validate()
	}

	return nil
}

// mask returns f's occupancy bitset for the line, allocating it lazily.
func (ls *lineState) mask(f cell.Fill) []uint64 {
	m, ok := ls.masks[f]
	if !ok {
		m = make([]uint64, (ls.length+63)/64)
		ls.masks[f] = m
	}

	return m
}

// setBit marks offset off as occupied by fill f.
func (ls *lineState) setBit(f cell.Fill, off grid.LinePosition) {
	ls.mask(f)[off/64] |= 1 << (uint(off) % 64)
}

// clearBit unmarks offset off for fill f, if the fill has a mask at all.
func (ls *lineState) clearBit(f cell.Fill, off grid.LinePosition) {
	if m, ok := ls.masks[f]; ok {
		m[off/64] &^= 1 << (uint(off) % 64)
	}
}
