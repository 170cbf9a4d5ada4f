package cell

// Fill is the value held by one grid cell and the label of one rule run.
// The zero value is Blank. Fills are ordered by their numeric value
// (Blank < Cross < Color(1) < Color(2) < …) and usable as map keys.
type Fill uint16

const (
	// Blank marks an undecided, empty cell. Zero value of Fill.
	Blank Fill = iota
	// Cross marks a cell the player has ruled out (definitely empty).
	Cross
)

// firstColor is the Fill value backing Color(1).
const firstColor Fill = 2

// Color returns the Fill for color id. Ids start at 1; digits 1–9 enter
// colors 1–9 and letters enter colors ≥ 10 (see FillFromGlyph).
// Color(0) is not a color and maps to Blank.
func Color(id int) Fill {
	if id <= 0 {
		return Blank
	}

	return firstColor + Fill(id-1)
}

// IsColor reports whether f is a color fill (neither Blank nor Cross).
func (f Fill) IsColor() bool {
	return f >= firstColor
}

// ColorID returns the 1-based color id of f, or 0 when f is not a color.
func (f Fill) ColorID() int {
	if !f.IsColor() {
		return 0
	}

	return int(f-firstColor) + 1
}

// crossGlyph is reserved for Cross and skipped in the letter→color mapping.
const crossGlyph = 'x'

// Glyph returns the single display rune for f:
// '.' for Blank, 'x' for Cross, '1'–'9' for colors 1–9, and 'a'–'z'
// (skipping 'x') for colors 10 and above. Colors past the letter range
// render as '?'.
func (f Fill) Glyph() rune {
	switch {
	case f == Blank:
		return '.'
	case f == Cross:
		return crossGlyph
	}
	id := f.ColorID()
	if id <= 9 {
		return rune('0' + id)
	}
	// Letters cover colors 10..34: 'a'..'w' then 'y','z' ('x' is reserved).
	off := id - 10
	r := rune('a' + off)
	if r >= crossGlyph {
		r++
	}
	if r > 'z' {
		return '?'
	}

	return r
}

// FillFromGlyph maps a keyboard rune to a Fill, inverting Glyph:
// '.' → Blank; 'x' and '0' → Cross; '1'–'9' → colors 1–9;
// 'a'–'z' except 'x' → colors ≥ 10. Unknown runes report ok=false.
func FillFromGlyph(r rune) (f Fill, ok bool) {
	switch {
	case r == '.':
		return Blank, true
	case r == crossGlyph || r == '0':
		return Cross, true
	case r >= '1' && r <= '9':
		return Color(int(r - '0')), true
	case r >= 'a' && r <= 'z':
		if r > crossGlyph {
			r--
		}
		return Color(10 + int(r-'a')), true
	}

	return Blank, false
}
