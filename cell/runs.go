package cell

import "iter"

// RunsOption configures the Runs iterator.
// Use with Runs(fills, opts...) or RunsOf(fills, opts...).
type RunsOption func(*runsOptions)

// runsOptions holds configurable parameters for run-length encoding.
type runsOptions struct {
	// colorsOnly drops Blank and Cross runs from the output entirely.
	// Suppressed runs do not merge colored runs across the gap they
	// occupied: [1 x x 1] still encodes as two separate 1×1 runs.
	colorsOnly bool
}

// WithColorsOnly returns a RunsOption that suppresses non-colored
// (Blank/Cross) runs from the output. Rules constrain only colored
// cells, so rule derivation encodes lines in this mode.
func WithColorsOnly() RunsOption {
	return func(o *runsOptions) {
		o.colorsOnly = true
	}
}

// Runs run-length-encodes fills into a lazy sequence of Runs, coalescing
// consecutive equal fills with one-element lookahead so the final run is
// neither lost nor duplicated. The sequence is finite and restartable.
// Complexity: O(n) time, O(1) memory.
func Runs(fills iter.Seq[Fill], opts ...RunsOption) iter.Seq[Run] {
	var o runsOptions
	for _, opt := range opts {
		opt(&o)
	}

	return func(yield func(Run) bool) {
		cur := Run{}
		for f := range fills {
			if cur.Count > 0 && f == cur.Fill {
				cur.Count++
				continue
			}
			if cur.Count > 0 && !o.suppressed(cur.Fill) {
				if !yield(cur) {
					return
				}
			}
			cur = Run{Fill: f, Count: 1}
		}
		// Flush the pending run accumulated by the lookahead.
		if cur.Count > 0 && !o.suppressed(cur.Fill) {
			yield(cur)
		}
	}
}

// suppressed reports whether a run of fill f is dropped under o.
func (o runsOptions) suppressed(f Fill) bool {
	return o.colorsOnly && !f.IsColor()
}

// RunsOf is a slice convenience over Runs: it encodes fills eagerly and
// returns the collected runs. Complexity: O(n) time, O(r) memory.
func RunsOf(fills []Fill, opts ...RunsOption) []Run {
	var runs []Run
	for r := range Runs(seqOf(fills), opts...) {
		runs = append(runs, r)
	}

	return runs
}

// Expand inverts the encoding: it repeats each run's fill Count times,
// in order. Expanding the colors-only encoding reproduces the original
// colored-cell subsequence. Complexity: O(total run length).
func Expand(runs []Run) []Fill {
	n := 0
	for _, r := range runs {
		n += r.Count
	}
	fills := make([]Fill, 0, n)
	for _, r := range runs {
		for i := 0; i < r.Count; i++ {
			fills = append(fills, r.Fill)
		}
	}

	return fills
}

// seqOf adapts a fill slice to a restartable iter.Seq.
func seqOf(fills []Fill) iter.Seq[Fill] {
	return func(yield func(Fill) bool) {
		for _, f := range fills {
			if !yield(f) {
				return
			}
		}
	}
}
