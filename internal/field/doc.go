// ============================================================================
// currencyedit - Currency input for the terminal
// ============================================================================
//
// Package:     field
// Description: Currency field controller, value stream and headless host
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package field wires the text algorithms of package format to a host text
// buffer. A Field owns no text itself: it reads and writes the buffer of its
// Host, reformats it on every edit and commits the value when focus is lost.
//
// Every edit and commit produces a Change that is passed to the
// OnValueChanged callback and published on the field's Stream. All methods
// of a Field must be called from one goroutine (the UI event loop); the
// Stream may be read from anywhere.
package field
