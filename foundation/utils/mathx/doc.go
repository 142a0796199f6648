// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides the exact decimal value and the currency
//              types used by the currency field.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-19 v0.3.0: Decimal rebuilt on shopspring/decimal with scale
//                       preservation, closed CurrencyType enum

// Package mathx provides exact decimal values and currency types.
//
// Decimal is an immutable base-10 number. Unlike a rational number it keeps
// the scale it was written with, so "1.50" prints as "1.50" and compares
// equal to "1.5". No binary floating point is involved at any step, which is
// what money input needs: the value a user typed is the value that is stored.
//
//	d, err := mathx.NewDecimal("1 239.5")   // error: spaces are not part of a value
//	d := mathx.MustNewDecimal("1239.50")
//	d.Truncate(1).String()                  // "1239.5"
//	d.Scale()                               // 2
//
// ParseDecimal is the lenient variant for user input: it returns nil for
// malformed text instead of an error.
//
// CurrencyType is a closed set of the three supported currencies with their
// display glyphs.
package mathx
