// File: decimal_test.go
// Title: Tests for Exact Decimal Values
// Description: Covers parsing, scale preservation, comparisons and directed
//              rounding of Decimal.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-19 v0.3.0: Rewritten for the shopspring-backed Decimal

package mathx

import (
	"testing"

	mdwerror "github.com/msto63/currencyedit/foundation/core/error"
)

func TestNewDecimal(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"0", "0", false},
		{"123", "123", false},
		{"1.50", "1.50", false},
		{"5.", "5", false},
		{".5", "0.5", false},
		{"+7", "7", false},
		{"-12.345", "-12.345", false},
		{"007", "7", false},
		{"12345678901234567890123.45", "12345678901234567890123.45", false},
		{"", "", true},
		{".", "", true},
		{"-", "", true},
		{"1.2.3", "", true},
		{"1 000", "", true},
		{"1e5", "", true},
		{"1,5", "", true},
		{"abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewDecimal(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewDecimal(%q) expected error, got %s", tt.input, got)
				}
				if !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
					t.Errorf("NewDecimal(%q) error code = %v, want %v", tt.input, mdwerror.GetCode(err), mdwerror.CodeInvalidFormat)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewDecimal(%q) unexpected error: %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("NewDecimal(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDecimal(t *testing.T) {
	if d := ParseDecimal("12.5"); d == nil || d.String() != "12.5" {
		t.Errorf("ParseDecimal(12.5) = %v, want 12.5", d)
	}
	if d := ParseDecimal("12,5"); d != nil {
		t.Errorf("ParseDecimal(12,5) = %v, want nil", d)
	}
}

func TestMustNewDecimalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNewDecimal should panic on malformed input")
		}
	}()
	MustNewDecimal("x")
}

func TestDecimalScale(t *testing.T) {
	tests := map[string]int{
		"1":     0,
		"1.5":   1,
		"1.50":  2,
		"0.000": 3,
		"-2.25": 2,
	}
	for input, want := range tests {
		if got := MustNewDecimal(input).Scale(); got != want {
			t.Errorf("Scale(%s) = %d, want %d", input, got, want)
		}
	}
}

func TestDecimalEquality(t *testing.T) {
	a := MustNewDecimal("1.5")
	b := MustNewDecimal("1.50")

	if !a.Equal(b) {
		t.Error("1.5 should equal 1.50")
	}
	if a.Identical(b) {
		t.Error("1.5 should not be identical to 1.50")
	}
	if a.Compare(b) != 0 {
		t.Errorf("Compare = %d, want 0", a.Compare(b))
	}
}

func TestDecimalComparisons(t *testing.T) {
	small := MustNewDecimal("99.99")
	large := MustNewDecimal("100")

	if !small.LessThan(large) || small.GreaterThan(large) {
		t.Error("99.99 should be less than 100")
	}
	if !large.GreaterThanOrEqual(large) || !small.LessThanOrEqual(small) {
		t.Error("inclusive comparisons should hold for equal values")
	}
	if got := small.Min(large); !got.Equal(small) {
		t.Errorf("Min = %s, want %s", got, small)
	}
	if got := small.Max(large); !got.Equal(large) {
		t.Errorf("Max = %s, want %s", got, large)
	}
	if !Zero().IsZero() || MustNewDecimal("0.00").IsNegative() {
		t.Error("zero checks failed")
	}
	if !MustNewDecimal("-0.01").IsNegative() {
		t.Error("-0.01 should be negative")
	}
	if NewDecimalFromInt(42).String() != "42" {
		t.Errorf("NewDecimalFromInt(42) = %s", NewDecimalFromInt(42))
	}
}

func TestDecimalTruncate(t *testing.T) {
	tests := []struct {
		input  string
		places int
		want   string
	}{
		{"1.239", 2, "1.23"},
		{"1.2", 2, "1.2"},
		{"1.999", 0, "1"},
		{"-1.239", 2, "-1.23"},
		{"10", 2, "10"},
	}
	for _, tt := range tests {
		got := MustNewDecimal(tt.input).Truncate(tt.places)
		if got.String() != tt.want {
			t.Errorf("Truncate(%s, %d) = %s, want %s", tt.input, tt.places, got, tt.want)
		}
	}
}

func TestDecimalDirectedRounding(t *testing.T) {
	d := MustNewDecimal("100.125")
	if got := d.RoundCeil(2).String(); got != "100.13" {
		t.Errorf("RoundCeil = %s, want 100.13", got)
	}
	if got := d.RoundFloor(2).String(); got != "100.12" {
		t.Errorf("RoundFloor = %s, want 100.12", got)
	}
	if got := MustNewDecimal("-1.5").RoundCeil(0).String(); got != "-1" {
		t.Errorf("RoundCeil(-1.5) = %s, want -1", got)
	}
}

func TestDecimalStringFixed(t *testing.T) {
	if got := MustNewDecimal("5").StringFixed(2); got != "5.00" {
		t.Errorf("StringFixed = %s, want 5.00", got)
	}
}

func TestDecimalTextEncoding(t *testing.T) {
	var d Decimal
	if err := d.UnmarshalText([]byte("250.00")); err != nil {
		t.Fatalf("UnmarshalText error: %v", err)
	}
	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText error: %v", err)
	}
	if string(text) != "250.00" {
		t.Errorf("MarshalText = %s, want 250.00", text)
	}
	if err := d.UnmarshalText([]byte("2,5")); err == nil {
		t.Error("UnmarshalText should reject 2,5")
	}
}

func TestDecimalUnmarshalTOML(t *testing.T) {
	tests := []struct {
		name    string
		in      interface{}
		want    string
		wantErr bool
	}{
		{"string", "100.125", "100.125", false},
		{"integer", int64(150), "150", false},
		{"float keeps shortest form", 100.125, "100.125", false},
		{"whole float", 200.0, "200", false},
		{"boolean", true, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Decimal
			err := d.UnmarshalTOML(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalTOML() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
					t.Errorf("UnmarshalTOML() error = %v, want invalid format", err)
				}
				return
			}
			if got := d.String(); got != tt.want {
				t.Errorf("UnmarshalTOML() = %s, want %s", got, tt.want)
			}
		})
	}
}
