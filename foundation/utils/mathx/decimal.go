// File: decimal.go
// Title: Exact Decimal Values
// Description: Implements Decimal, an immutable exact base-10 number backed by
//              shopspring/decimal. The scale of the input is preserved for
//              printing, comparisons are numeric.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core decimal operations
// - 2025-07-26 v0.1.1: Enhanced String() method with auto-rounding for financial values
// - 2026-10-19 v0.3.0: Backed by shopspring/decimal, strict plain-notation parser,
//                       scale-preserving String, directed rounding, TOML numbers

package mathx

import (
	"strconv"

	"github.com/shopspring/decimal"

	mdwerror "github.com/msto63/currencyedit/foundation/core/error"
)

// Decimal represents an exact decimal number. The zero value is 0.
type Decimal struct {
	value decimal.Decimal
}

// NewDecimal parses plain decimal notation: an optional sign, digits and at
// most one point. "5." and ".5" are accepted, exponents and separators are not.
func NewDecimal(s string) (Decimal, error) {
	normalized, ok := normalizePlain(s)
	if !ok {
		return Decimal{}, mdwerror.New("invalid decimal format: "+quote(s)).
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("mathx.NewDecimal").
			WithDetail("input", s)
	}
	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return Decimal{}, mdwerror.Wrap(err, "invalid decimal format: "+quote(s)).
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("mathx.NewDecimal")
	}
	return Decimal{value: value}, nil
}

// ParseDecimal parses s like NewDecimal but returns nil on malformed input
func ParseDecimal(s string) *Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		return nil
	}
	return &d
}

// MustNewDecimal creates a new Decimal from a string, panicking on error.
// Use this for constants.
func MustNewDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDecimalFromInt creates a new Decimal from an integer
func NewDecimalFromInt(i int64) Decimal {
	return Decimal{value: decimal.NewFromInt(i)}
}

// Zero returns a decimal representing zero
func Zero() Decimal {
	return Decimal{}
}

// normalizePlain validates plain notation and rewrites the forms the
// backing parser rejects ("5.", ".5", "+5")
func normalizePlain(s string) (string, bool) {
	if s == "" {
		return "", false
	}

	sign := ""
	body := s
	switch s[0] {
	case '-':
		sign = "-"
		body = s[1:]
	case '+':
		body = s[1:]
	}

	digits := 0
	point := -1
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && point == -1:
			point = i
		default:
			return "", false
		}
	}
	if digits == 0 {
		return "", false
	}

	switch {
	case point == len(body)-1:
		body = body[:point]
	case point == 0:
		body = "0" + body
	}
	return sign + body, true
}

func quote(s string) string {
	return "\"" + s + "\""
}

// Compare returns -1, 0 or 1 when d is less than, equal to or greater than other
func (d Decimal) Compare(other Decimal) int {
	return d.value.Cmp(other.value)
}

// Equal reports numeric equality; 1.5 equals 1.50
func (d Decimal) Equal(other Decimal) bool {
	return d.value.Equal(other.value)
}

// Identical reports equality including the scale; 1.5 is not identical to 1.50
func (d Decimal) Identical(other Decimal) bool {
	return d.Equal(other) && d.Scale() == other.Scale()
}

// GreaterThan reports d > other
func (d Decimal) GreaterThan(other Decimal) bool {
	return d.value.GreaterThan(other.value)
}

// GreaterThanOrEqual reports d >= other
func (d Decimal) GreaterThanOrEqual(other Decimal) bool {
	return d.value.GreaterThanOrEqual(other.value)
}

// LessThan reports d < other
func (d Decimal) LessThan(other Decimal) bool {
	return d.value.LessThan(other.value)
}

// LessThanOrEqual reports d <= other
func (d Decimal) LessThanOrEqual(other Decimal) bool {
	return d.value.LessThanOrEqual(other.value)
}

// Min returns the smaller of d and other
func (d Decimal) Min(other Decimal) Decimal {
	if other.LessThan(d) {
		return other
	}
	return d
}

// Max returns the larger of d and other
func (d Decimal) Max(other Decimal) Decimal {
	if other.GreaterThan(d) {
		return other
	}
	return d
}

// IsZero reports whether d is zero
func (d Decimal) IsZero() bool {
	return d.value.IsZero()
}

// IsNegative reports whether d is below zero
func (d Decimal) IsNegative() bool {
	return d.value.IsNegative()
}

// Scale returns the number of fractional digits d carries
func (d Decimal) Scale() int {
	if exp := d.value.Exponent(); exp < 0 {
		return int(-exp)
	}
	return 0
}

// Truncate drops fractional digits beyond places without rounding.
// Values with fewer digits are returned unchanged.
func (d Decimal) Truncate(places int) Decimal {
	if places < 0 {
		places = 0
	}
	return Decimal{value: d.value.Truncate(int32(places))}
}

// RoundCeil rounds towards positive infinity at places fractional digits
func (d Decimal) RoundCeil(places int) Decimal {
	if places < 0 {
		places = 0
	}
	return Decimal{value: d.value.RoundCeil(int32(places))}
}

// RoundFloor rounds towards negative infinity at places fractional digits
func (d Decimal) RoundFloor(places int) Decimal {
	if places < 0 {
		places = 0
	}
	return Decimal{value: d.value.RoundFloor(int32(places))}
}

// String returns plain notation with exactly Scale() fractional digits
func (d Decimal) String() string {
	if scale := d.Scale(); scale > 0 {
		return d.value.StringFixed(int32(scale))
	}
	return d.value.StringFixed(0)
}

// StringFixed returns plain notation with exactly places fractional digits,
// rounding half away from zero when digits are dropped
func (d Decimal) StringFixed(places int) string {
	if places < 0 {
		places = 0
	}
	return d.value.StringFixed(int32(places))
}

// MarshalText implements encoding.TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, used by the TOML and
// YAML decoders for config values
func (d *Decimal) UnmarshalText(text []byte) error {
	parsed, err := NewDecimal(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// UnmarshalTOML lets TOML files write amounts as numbers. Floats are taken
// in their shortest form, so 100.125 stays 100.125 instead of 100.125000.
func (d *Decimal) UnmarshalTOML(v interface{}) error {
	switch t := v.(type) {
	case string:
		return d.UnmarshalText([]byte(t))
	case int64:
		return d.UnmarshalText([]byte(strconv.FormatInt(t, 10)))
	case float64:
		return d.UnmarshalText([]byte(strconv.FormatFloat(t, 'f', -1, 64)))
	default:
		return mdwerror.Newf("invalid decimal value of type %T", v).
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("mathx.Decimal.UnmarshalTOML")
	}
}
