package solver

import (
	"math/bits"

	"github.com/katalvlaran/nonogrid/cell"
	"github.com/katalvlaran/nonogrid/grid"
)

// validate classifies the line's current occupancy against its rule.
//
// Invalid wins over Solved: a maximal occupied block of one fill that no
// single same-fill run can produce (outside every feasible window, or
// longer than every covering run allows) is a contradiction regardless
// of how the rest of the line reads. Otherwise the line is Solved when
// its colors-only run-length encoding — the same Runs mechanism that
// derives rules — equals the rule's run sequence in order, and Valid in
// every remaining case. Complexity: O(line length).
func (ls *lineState) validate() Validation {
	fills := ls.reconstruct()

	for start := 0; start < len(fills); {
		f := fills[start]
		end := start + 1
		for end < len(fills) && fills[end] == f {
			end++
		}
		if f.IsColor() && !ls.rule.FitsRun(f, grid.LinePosition(start), grid.LinePosition(end)) {
			return Invalid
		}
		start = end
	}

	got := cell.RunsOf(fills, cell.WithColorsOnly())
	want := ls.rule.Runs()
	if len(got) != len(want) {
		return Valid
	}
	for i := range want {
		if got[i] != want[i] {
			return Valid
		}
	}

	return Solved
}

// reconstruct materializes the line's fills from its occupancy masks.
// Offsets no mask claims read as Blank. The masks are an exact mirror of
// the grid, so this never consults the grid itself.
// Complexity: O(line length + fills in use).
func (ls *lineState) reconstruct() []cell.Fill {
	fills := make([]cell.Fill, ls.length)
	for f, m := range ls.masks {
		for bi, block := range m {
			for b := block; b != 0; b &= b - 1 {
				fills[bi*64+bits.TrailingZeros64(b)] = f
			}
		}
	}

	return fills
}

// popCount returns the number of offsets fill f occupies on the line.
func (ls *lineState) popCount(f cell.Fill) int {
	n := 0
	for _, block := range ls.masks[f] {
		n += bits.OnesCount64(block)
	}

	return n
}
