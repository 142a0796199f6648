package format

import (
	"strconv"
	"strings"

	"github.com/msto63/currencyedit/foundation/utils/mathx"
)

// Digits is the number of fractional digits a field accepts
type Digits int

// Unlimited accepts any number of fractional digits
const Unlimited Digits = -1

// IsUnlimited reports whether no accuracy is configured
func (d Digits) IsUnlimited() bool {
	return d == Unlimited
}

// IsValid reports whether d is Unlimited or non-negative
func (d Digits) IsValid() bool {
	return d == Unlimited || d >= 0
}

// String returns the digit count or "unlimited"
func (d Digits) String() string {
	if d.IsUnlimited() {
		return "unlimited"
	}
	return strconv.Itoa(int(d))
}

// Normalize truncates the fractional part of value to at most digits digits.
// Truncation never rounds: 1.239 at 2 digits is 1.23.
func Normalize(value mathx.Decimal, digits Digits) mathx.Decimal {
	if digits.IsUnlimited() {
		return value
	}
	return value.Truncate(int(digits))
}

// Pad returns the insignificant zeros that complete text to exactly digits
// fractional digits. Group separators in text are ignored.
func Pad(text string, digits Digits) string {
	if digits.IsUnlimited() || digits == 0 {
		return ""
	}

	flat := Strip(text)
	point := strings.IndexByte(flat, '.')
	if point == -1 {
		return "." + strings.Repeat("0", int(digits))
	}

	missing := int(digits) - (len(flat) - point - 1)
	if missing <= 0 {
		return ""
	}
	return strings.Repeat("0", missing)
}

// PrepareToShow normalizes value and physically appends the padding, so
// 5 at 2 digits becomes 5.00
func PrepareToShow(value mathx.Decimal, digits Digits) mathx.Decimal {
	normalized := Normalize(value, digits)
	text := normalized.String()
	padded := text + Pad(text, digits)
	if prepared := mathx.ParseDecimal(padded); prepared != nil {
		return *prepared
	}
	return normalized
}
