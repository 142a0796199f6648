// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of the
//              currency field, its configuration layer and the CLI.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Field configuration codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Configuration
	CodeConfigError     Code = "CONFIG_ERROR"
	CodeInvalidConfig   Code = "INVALID_CONFIG"
	CodeInvalidBounds   Code = "INVALID_BOUNDS"
	CodeInvalidAccuracy Code = "INVALID_ACCURACY"

	// Validation
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"

	// Host environment
	CodeClipboardUnavailable Code = "CLIPBOARD_UNAVAILABLE"
	CodeWatchFailed          Code = "WATCH_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}
