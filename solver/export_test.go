package solver

import (
	"github.com/katalvlaran/nonogrid/cell"
	"github.com/katalvlaran/nonogrid/grid"
)

// MaskPopCount exposes the per-line, per-fill occupancy count for
// property tests (the set-bit count must never exceed the line length).
func (s *Solver) MaskPopCount(l grid.Line, f cell.Fill) int {
	ls, ok := s.lines[l]
	if !ok {
		return 0
	}

	return ls.popCount(f)
}

// LineLenFor exposes a line's recorded length for property tests.
func (s *Solver) LineLenFor(l grid.Line) int {
	ls, ok := s.lines[l]
	if !ok {
		return 0
	}

	return ls.length
}
