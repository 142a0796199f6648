package format

import (
	"testing"

	"github.com/msto63/currencyedit/foundation/utils/mathx"
)

func dec(s string) *mathx.Decimal {
	d := mathx.MustNewDecimal(s)
	return &d
}

func TestEvaluate(t *testing.T) {
	min, max := dec("100.125"), dec("200.019")

	tests := []struct {
		name  string
		value *mathx.Decimal
		min   *mathx.Decimal
		max   *mathx.Decimal
		want  State
	}{
		{"below", dec("50"), min, max, StateBelowMin},
		{"above", dec("250"), min, max, StateAboveMax},
		{"inside", dec("150.5"), min, max, StateOK},
		{"on min", dec("100.125"), min, max, StateOK},
		{"on max", dec("200.019"), min, max, StateOK},
		{"nil counts as zero", nil, min, max, StateBelowMin},
		{"nil without bounds", nil, nil, nil, StateOK},
		{"only max", dec("1000"), nil, max, StateAboveMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.value, tt.min, tt.max); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	min, max := dec("100.125"), dec("200.019")

	if got := Clamp(*dec("50"), min, max); got.String() != "100.125" {
		t.Errorf("Clamp(50) = %s, want 100.125", got)
	}
	if got := Clamp(*dec("250"), min, max); got.String() != "200.019" {
		t.Errorf("Clamp(250) = %s, want 200.019", got)
	}
	if got := Clamp(*dec("150.5"), min, max); got.String() != "150.5" {
		t.Errorf("Clamp(150.5) = %s, want 150.5", got)
	}
	if got := Clamp(*dec("-5"), nil, nil); got.String() != "-5" {
		t.Errorf("Clamp without bounds = %s, want -5", got)
	}
}

func TestClampTo(t *testing.T) {
	min, max := dec("100.125"), dec("200.019")

	tests := []struct {
		value  string
		digits Digits
		want   string
	}{
		{"50", 2, "100.13"},
		{"50", 3, "100.125"},
		{"50", Unlimited, "100.125"},
		{"250", 2, "200.01"},
		{"150.5", 2, "150.5"},
	}
	for _, tt := range tests {
		got := ClampTo(*dec(tt.value), min, max, tt.digits)
		if got.String() != tt.want {
			t.Errorf("ClampTo(%s, %v) = %s, want %s", tt.value, tt.digits, got, tt.want)
		}
	}

}

func TestClampToCrossingBoundsPrefersMin(t *testing.T) {
	min, max := dec("1.001"), dec("1.009")
	for _, value := range []string{"0", "1.005", "5"} {
		got := ClampTo(*dec(value), min, max, 2)
		if got.String() != "1.01" {
			t.Errorf("ClampTo(%s) = %s, want 1.01", value, got)
		}
		if !got.GreaterThan(*max) {
			t.Errorf("ClampTo(%s) = %s, want the rounded min above max %s", value, got, max)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		StateOK:       "ok",
		StateBelowMin: "below_min",
		StateAboveMax: "above_max",
		StateApplied:  "applied",
		State(42):     "unknown",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}
