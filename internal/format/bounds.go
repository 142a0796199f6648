package format

import "github.com/msto63/currencyedit/foundation/utils/mathx"

// State is the validation state reported with every value
type State int

const (
	// StateOK means the value lies within the bounds
	StateOK State = iota
	// StateBelowMin means the value is smaller than the minimum
	StateBelowMin
	// StateAboveMax means the value is larger than the maximum
	StateAboveMax
	// StateApplied means the value was committed and clamped
	StateApplied
)

// String returns the snake case name of the state
func (s State) String() string {
	switch s {
	case StateOK:
		return "ok"
	case StateBelowMin:
		return "below_min"
	case StateAboveMax:
		return "above_max"
	case StateApplied:
		return "applied"
	default:
		return "unknown"
	}
}

// Evaluate compares value against the optional bounds. A nil value counts
// as zero.
func Evaluate(value, min, max *mathx.Decimal) State {
	v := mathx.Zero()
	if value != nil {
		v = *value
	}
	switch {
	case min != nil && v.LessThan(*min):
		return StateBelowMin
	case max != nil && v.GreaterThan(*max):
		return StateAboveMax
	default:
		return StateOK
	}
}

// Clamp limits value to [min,max]. A nil bound does not limit its side.
func Clamp(value mathx.Decimal, min, max *mathx.Decimal) mathx.Decimal {
	if min != nil && value.LessThan(*min) {
		return *min
	}
	if max != nil && value.GreaterThan(*max) {
		return *max
	}
	return value
}

// ClampTo clamps like Clamp but first rounds each bound inward to digits so
// the result is representable at that accuracy: a minimum of 100.125 at two
// digits becomes 100.13. When rounding makes the bounds cross, the rounded
// minimum wins even though it lies above max: min 1.001 and max 1.009 at two
// digits commit 1.01.
func ClampTo(value mathx.Decimal, min, max *mathx.Decimal, digits Digits) mathx.Decimal {
	if digits.IsUnlimited() {
		return Clamp(value, min, max)
	}

	var lo, hi *mathx.Decimal
	if min != nil {
		r := min.RoundCeil(int(digits))
		lo = &r
	}
	if max != nil {
		r := max.RoundFloor(int(digits))
		hi = &r
	}
	if lo != nil && hi != nil && lo.GreaterThan(*hi) {
		// no value at this accuracy fits, stay on the minimum side
		return *lo
	}
	return Clamp(value, lo, hi)
}
