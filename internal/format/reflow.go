package format

import "strings"

// Reflow turns the raw text of the field after an edit into canonical
// display text and moves the cursor so it stays behind the edited digit.
//
// old is the display text before the edit, raw the text after the host
// applied it (it may still contain separators), inserted the fragment the
// edit added and cursor the rune offset in raw right after the edit.
// The fractional part is kept as typed, including a trailing point.
func Reflow(old, raw, inserted string, cursor int) (string, int) {
	runes := []rune(raw)
	cursor = clampIndex(cursor, len(runes))
	rawCursor := cursor

	// flatten, counting separators in front of the cursor
	pos := cursor - strings.Count(string(runes[:cursor]), string(Separator))
	flat := Strip(raw)

	integer, fraction := flat, ""
	hasPoint := false
	if point := strings.IndexByte(flat, '.'); point != -1 {
		integer, fraction, hasPoint = flat[:point], flat[point+1:], true
	}

	// a field showing only the placeholder zero is overwritten by the
	// first digit typed in front of it
	if fragment := Strip(inserted); fragment != "" && Strip(old) == "0" && !hasPoint && pos == 1 {
		return Group(fragment), regroupCursor(fragment, len(fragment))
	}

	for strings.HasPrefix(integer, "0") {
		integer = integer[1:]
		if pos > 0 {
			pos--
		}
	}

	if integer == "" {
		integer = "0"
		if rawCursor != 0 {
			pos++
		}
	}

	pos = regroupCursor(integer, pos)
	text := Group(integer)
	if hasPoint {
		text += "." + fraction
	}
	return text, pos
}

// regroupCursor shifts a flat cursor right by one for every separator that
// grouping inserts in front of it
func regroupCursor(integer string, pos int) int {
	shifted := pos
	for i := len(integer) - GroupSize; i > 0; i -= GroupSize {
		if i < pos {
			shifted++
		}
	}
	return shifted
}
