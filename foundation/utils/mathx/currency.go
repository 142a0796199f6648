// File: currency.go
// Title: Currency Types
// Description: Implements CurrencyType, the closed set of currencies a
//              currency field can display, with glyphs, ISO codes and
//              text encoding for configuration files.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with currency formatting and operations
// - 2026-10-19 v0.3.0: Replaced open registry with closed CurrencyType enum

package mathx

import (
	"strings"

	mdwerror "github.com/msto63/currencyedit/foundation/core/error"
)

// CurrencyType identifies the currency shown next to a value
type CurrencyType int

const (
	// CurrencyRUB is the Russian ruble, the default
	CurrencyRUB CurrencyType = iota
	// CurrencyEUR is the euro
	CurrencyEUR
	// CurrencyUSD is the US dollar
	CurrencyUSD
)

// DefaultCurrency is used when nothing else is configured
const DefaultCurrency = CurrencyRUB

var currencyInfo = map[CurrencyType]struct {
	code   string
	symbol string
	name   string
}{
	CurrencyRUB: {code: "RUB", symbol: "₽", name: "Russian Ruble"},
	CurrencyEUR: {code: "EUR", symbol: "€", name: "Euro"},
	CurrencyUSD: {code: "USD", symbol: "$", name: "US Dollar"},
}

// AllCurrencies returns every supported currency in declaration order
func AllCurrencies() []CurrencyType {
	return []CurrencyType{CurrencyRUB, CurrencyEUR, CurrencyUSD}
}

// IsValid reports whether c is one of the supported currencies
func (c CurrencyType) IsValid() bool {
	_, ok := currencyInfo[c]
	return ok
}

// Symbol returns the display glyph. Unknown values fall back to the default.
func (c CurrencyType) Symbol() string {
	if info, ok := currencyInfo[c]; ok {
		return info.symbol
	}
	return currencyInfo[DefaultCurrency].symbol
}

// Code returns the ISO 4217 code
func (c CurrencyType) Code() string {
	if info, ok := currencyInfo[c]; ok {
		return info.code
	}
	return currencyInfo[DefaultCurrency].code
}

// Name returns the English name
func (c CurrencyType) Name() string {
	if info, ok := currencyInfo[c]; ok {
		return info.name
	}
	return currencyInfo[DefaultCurrency].name
}

// String returns the ISO code
func (c CurrencyType) String() string {
	return c.Code()
}

// ParseCurrencyType accepts an ISO code, the legacy code RUR or a glyph.
// Matching is case-insensitive.
func ParseCurrencyType(s string) (CurrencyType, error) {
	trimmed := strings.TrimSpace(s)
	switch strings.ToUpper(trimmed) {
	case "RUB", "RUR", "₽":
		return CurrencyRUB, nil
	case "EUR", "€":
		return CurrencyEUR, nil
	case "USD", "$":
		return CurrencyUSD, nil
	}
	return DefaultCurrency, mdwerror.New("unknown currency: "+quote(s)).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("mathx.ParseCurrencyType").
		WithDetail("input", s)
}

// MarshalText implements encoding.TextMarshaler
func (c CurrencyType) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *CurrencyType) UnmarshalText(text []byte) error {
	parsed, err := ParseCurrencyType(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
