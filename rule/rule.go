package rule

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/nonogrid/cell"
	"github.com/katalvlaran/nonogrid/grid"
)

// Sentinel errors for rule construction and bundling.
var (
	// ErrBadRun indicates a run with a non-color fill or a count below 1.
	ErrBadRun = errors.New("rule: runs must pair a color fill with a count ≥ 1")
	// ErrBadLineLen indicates a non-positive line length.
	ErrBadLineLen = errors.New("rule: line length must be positive")
	// ErrRuleTooLong indicates the rule's minimum required length exceeds the line.
	ErrRuleTooLong = errors.New("rule: minimum required length exceeds line length")
	// ErrNoRules indicates a bundle with no row rules or no column rules.
	ErrNoRules = errors.New("rule: puzzle needs at least one row rule and one column rule")
	// ErrSizeMismatch indicates a flat grid payload whose cell count differs from rows×cols.
	ErrSizeMismatch = errors.New("rule: flat grid size does not match rule dimensions")
)

// Rule is the ordered run constraint of exactly one line, together with
// the line's fixed length and derived feasibility data. Construct with
// New; the zero value is not usable.
type Rule struct {
	runs    []cell.Run
	lineLen int
	// prefix[i] holds the total count of runs[0:i]; len(prefix) = len(runs)+1.
	prefix []int

	// Memoized feasibility data, populated by GenerateConstraints.
	generated bool
	earliest  []int
	latest    []int
	feasible  map[cell.Fill][]span
}

// New constructs a Rule from an ordered run sequence and the length of
// the line it constrains. The runs are copied. An empty run sequence is
// valid and demands an all-non-colored line.
//
// Returns ErrBadLineLen, ErrBadRun, or ErrRuleTooLong (wrapped with the
// offending sizes) — the rule's minimum required length is the sum of
// run counts plus one mandatory blank between every pair of consecutive
// runs. Complexity: O(r).
func New(runs []cell.Run, lineLen int) (*Rule, error) {
	if lineLen <= 0 {
		return nil, fmt.Errorf("length %d: %w", lineLen, ErrBadLineLen)
	}
	minLen := 0
	for i, run := range runs {
		if !run.Fill.IsColor() || run.Count < 1 {
			return nil, fmt.Errorf("run %d (%v): %w", i, run, ErrBadRun)
		}
		if i > 0 {
			minLen++ // mandatory gap after the previous run
		}
		minLen += run.Count
	}
	if minLen > lineLen {
		return nil, fmt.Errorf("need %d cells, line has %d: %w", minLen, lineLen, ErrRuleTooLong)
	}

	rs := make([]cell.Run, len(runs))
	copy(rs, runs)
	prefix := make([]int, len(rs)+1)
	for i, run := range rs {
		prefix[i+1] = prefix[i] + run.Count
	}

	return &Rule{runs: rs, lineLen: lineLen, prefix: prefix}, nil
}

// Runs returns a copy of the ordered run sequence.
func (r *Rule) Runs() []cell.Run {
	out := make([]cell.Run, len(r.runs))
	copy(out, r.runs)

	return out
}

// RunCount returns the number of runs in the rule.
func (r *Rule) RunCount() int { return len(r.runs) }

// LineLen returns the fixed length of the constrained line.
func (r *Rule) LineLen() int { return r.lineLen }

// LenWithin returns the total run length within the run index sub-range
// [a,b), answered in O(1) via prefix sums. Indices are clamped to the
// valid range; an empty or inverted range yields 0.
func (r *Rule) LenWithin(a, b int) int {
	a = clamp(a, 0, len(r.runs))
	b = clamp(b, 0, len(r.runs))
	if a >= b {
		return 0
	}

	return r.prefix[b] - r.prefix[a]
}

// MinRun returns the index of the first run whose feasible window
// contains offset off, aligning a rule cursor with the puzzle cursor.
// Reports ok=false when no run can cover off. Complexity: O(r).
func (r *Rule) MinRun(off grid.LinePosition) (idx int, ok bool) {
	r.GenerateConstraints()
	o := int(off)
	for i := range r.runs {
		if o >= r.earliest[i] && o < r.latest[i]+r.runs[i].Count {
			return i, true
		}
	}

	return 0, false
}

// MaxRun returns the largest run count of fill f in the rule, or 0 when
// the rule has no run of that fill.
func (r *Rule) MaxRun(f cell.Fill) int {
	best := 0
	for _, run := range r.runs {
		if run.Fill == f && run.Count > best {
			best = run.Count
		}
	}

	return best
}

// Clone returns an independent copy of the rule with feasibility data
// reset, so each owner memoizes its own constraints.
func (r *Rule) Clone() *Rule {
	out := &Rule{
		runs:    make([]cell.Run, len(r.runs)),
		lineLen: r.lineLen,
		prefix:  make([]int, len(r.prefix)),
	}
	copy(out.runs, r.runs)
	copy(out.prefix, r.prefix)

	return out
}

// String renders the rule's runs space-separated, e.g. "1×3 2×1".
func (r *Rule) String() string {
	parts := make([]string, len(r.runs))
	for i, run := range r.runs {
		parts[i] = run.String()
	}

	return strings.Join(parts, " ")
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
