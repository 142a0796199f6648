// ============================================================================
// currencyedit - Currency input for the terminal
// ============================================================================
//
// Package:     format
// Description: Pure text algorithms of the currency field
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package format holds the pure text algorithms behind the currency field:
// accuracy normalization and ghost padding, the keystroke filter, the reflow
// engine that regroups digits while tracking the cursor, and bound evaluation.
//
// Displayed text groups the integer part in threes from the right with a
// single space and uses "." as the decimal point:
//
//	1 234 567.89
//
// Nothing in this package keeps state between calls except the compiled
// filter rules, which are cached per accuracy.
package format
