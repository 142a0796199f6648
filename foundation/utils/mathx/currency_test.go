// File: currency_test.go
// Title: Tests for Currency Types
// Description: Covers glyphs, codes and parsing of CurrencyType.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-19 v0.3.0: Rewritten for CurrencyType

package mathx

import "testing"

func TestCurrencySymbols(t *testing.T) {
	tests := []struct {
		currency CurrencyType
		symbol   string
		code     string
	}{
		{CurrencyRUB, "₽", "RUB"},
		{CurrencyEUR, "€", "EUR"},
		{CurrencyUSD, "$", "USD"},
		{CurrencyType(99), "₽", "RUB"},
	}
	for _, tt := range tests {
		if got := tt.currency.Symbol(); got != tt.symbol {
			t.Errorf("Symbol(%d) = %q, want %q", tt.currency, got, tt.symbol)
		}
		if got := tt.currency.Code(); got != tt.code {
			t.Errorf("Code(%d) = %q, want %q", tt.currency, got, tt.code)
		}
	}
	if DefaultCurrency != CurrencyRUB {
		t.Errorf("DefaultCurrency = %v, want RUB", DefaultCurrency)
	}
	if CurrencyType(99).IsValid() {
		t.Error("CurrencyType(99) should be invalid")
	}
}

func TestParseCurrencyType(t *testing.T) {
	tests := map[string]CurrencyType{
		"rub": CurrencyRUB,
		"RUR": CurrencyRUB,
		"₽":   CurrencyRUB,
		"eur": CurrencyEUR,
		"€":   CurrencyEUR,
		" USD ": CurrencyUSD,
		"$":   CurrencyUSD,
	}
	for input, want := range tests {
		got, err := ParseCurrencyType(input)
		if err != nil {
			t.Errorf("ParseCurrencyType(%q) error: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("ParseCurrencyType(%q) = %v, want %v", input, got, want)
		}
	}
	if _, err := ParseCurrencyType("GBP"); err == nil {
		t.Error("ParseCurrencyType(GBP) should fail")
	}
}

func TestCurrencyTextEncoding(t *testing.T) {
	var c CurrencyType
	if err := c.UnmarshalText([]byte("usd")); err != nil {
		t.Fatalf("UnmarshalText error: %v", err)
	}
	if c != CurrencyUSD {
		t.Errorf("UnmarshalText = %v, want USD", c)
	}
	text, _ := c.MarshalText()
	if string(text) != "USD" {
		t.Errorf("MarshalText = %s, want USD", text)
	}
}
