package format

import (
	"strings"

	"github.com/msto63/currencyedit/foundation/utils/mathx"
)

// Separator is the group separator of displayed text
const Separator = ' '

// GroupSize is the number of digits per group
const GroupSize = 3

// Strip removes every group separator from text
func Strip(text string) string {
	return strings.ReplaceAll(text, string(Separator), "")
}

// Group inserts a separator before every chunk of three digits counted from
// the right, except at position 0
func Group(digits string) string {
	n := len(digits)
	if n <= GroupSize {
		return digits
	}

	var b strings.Builder
	b.Grow(n + n/GroupSize)
	head := n % GroupSize
	if head == 0 {
		head = GroupSize
	}
	b.WriteString(digits[:head])
	for i := head; i < n; i += GroupSize {
		b.WriteRune(Separator)
		b.WriteString(digits[i : i+GroupSize])
	}
	return b.String()
}

// Format returns the display text of value: grouped integer part followed by
// the fractional part exactly as the value carries it
func Format(value mathx.Decimal) string {
	text := value.String()

	sign := ""
	if strings.HasPrefix(text, "-") {
		sign, text = "-", text[1:]
	}

	integer, fraction := text, ""
	if point := strings.IndexByte(text, '.'); point != -1 {
		integer, fraction = text[:point], text[point:]
	}
	return sign + Group(integer) + fraction
}
