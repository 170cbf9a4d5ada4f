package cell

import "fmt"

// Run pairs one Fill with a repeat count. A maximal contiguous block of
// equal fills along a line encodes as one Run; an ordered Run sequence
// is the payload of a rule. Count is always ≥ 1 for runs produced by
// this package.
type Run struct {
	Fill  Fill
	Count int
}

// String renders the run as "<glyph>×<count>", e.g. "1×3" or "x×2".
func (r Run) String() string {
	return fmt.Sprintf("%c×%d", r.Fill.Glyph(), r.Count)
}
