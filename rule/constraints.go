package rule

import (
	"sort"

	"github.com/katalvlaran/nonogrid/cell"
	"github.com/katalvlaran/nonogrid/grid"
)

// span is a half-open feasible interval [Lo, Hi) of line offsets.
type span struct {
	Lo, Hi int
}

// GenerateConstraints derives each run's feasible start window and the
// per-fill feasible coverage. Idempotent and memoized: the computation
// runs once per Rule (an explicit flag, so cache invalidation on reload
// is an explicit Clone/rebuild, never implicit).
//
// Two linear passes:
//
//	earliest[0] = 0;            earliest[i]   = earliest[i-1] + count[i-1] + 1
//	latest[n-1] = len - count;  latest[i]     = latest[i+1]   - count[i]   - 1
//
// Run i may occupy any offset in [earliest[i], latest[i]+count[i]); the
// intersection [latest[i], earliest[i]+count[i]) is forced. Complexity:
// O(r log r) first call (per-fill interval sort), O(1) after.
func (r *Rule) GenerateConstraints() {
	if r.generated {
		return
	}
	n := len(r.runs)
	r.earliest = make([]int, n)
	r.latest = make([]int, n)
	for i := 0; i < n; i++ {
		if i == 0 {
			r.earliest[i] = 0
			continue
		}
		r.earliest[i] = r.earliest[i-1] + r.runs[i-1].Count + 1
	}
	for i := n - 1; i >= 0; i-- {
		if i == n-1 {
			r.latest[i] = r.lineLen - r.runs[i].Count
			continue
		}
		r.latest[i] = r.latest[i+1] - r.runs[i].Count - 1
	}

	// Per-fill coverage: union of the fill's run windows, sorted and merged.
	r.feasible = make(map[cell.Fill][]span, len(r.runs))
	for i, run := range r.runs {
		w := span{Lo: r.earliest[i], Hi: r.latest[i] + run.Count}
		r.feasible[run.Fill] = append(r.feasible[run.Fill], w)
	}
	for f, spans := range r.feasible {
		sort.Slice(spans, func(a, b int) bool { return spans[a].Lo < spans[b].Lo })
		merged := spans[:0]
		for _, s := range spans {
			if len(merged) > 0 && s.Lo <= merged[len(merged)-1].Hi {
				if s.Hi > merged[len(merged)-1].Hi {
					merged[len(merged)-1].Hi = s.Hi
				}
				continue
			}
			merged = append(merged, s)
		}
		r.feasible[f] = merged
	}
	r.generated = true
}

// Feasible reports whether a cell holding fill f at offset off could
// belong to some arrangement satisfying the rule — i.e. off lies inside
// at least one same-fill run window. Complexity: O(r).
func (r *Rule) Feasible(f cell.Fill, off grid.LinePosition) bool {
	r.GenerateConstraints()
	o := int(off)
	for _, s := range r.feasible[f] {
		if o >= s.Lo && o < s.Hi {
			return true
		}
	}

	return false
}

// FitsRun reports whether some single run of fill f could produce a
// maximal occupied block spanning offsets [lo, hi): its window must
// cover the whole block and its count must be at least the block length.
// Complexity: O(r).
func (r *Rule) FitsRun(f cell.Fill, lo, hi grid.LinePosition) bool {
	r.GenerateConstraints()
	for i, run := range r.runs {
		if run.Fill != f || run.Count < int(hi-lo) {
			continue
		}
		if int(lo) >= r.earliest[i] && int(hi) <= r.latest[i]+run.Count {
			return true
		}
	}

	return false
}

// Forced returns the offsets run idx must occupy regardless of slack
// distribution: the intersection of its earliest and latest placements.
// Reports ok=false when the run has enough slack to avoid any fixed cell
// or idx is out of range.
func (r *Rule) Forced(idx int) (lo, hi grid.LinePosition, ok bool) {
	if idx < 0 || idx >= len(r.runs) {
		return 0, 0, false
	}
	r.GenerateConstraints()
	l, h := r.latest[idx], r.earliest[idx]+r.runs[idx].Count
	if l >= h {
		return 0, 0, false
	}

	return grid.LinePosition(l), grid.LinePosition(h), true
}
