// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels used to rank errors for logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Severity mapping for field configuration codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error such as rejected user input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a programmer mistake, e.g. crossing bounds
	SeverityHigh

	// SeverityCritical indicates an error that makes the component unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should be surfaced loudly
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeInvalidBounds, CodeInvalidAccuracy, CodeInvalidConfig, CodeConfigError:
		return SeverityHigh
	case CodeInvalidInput, CodeNotFound, CodeInvalidFormat, CodeValueOutOfRange,
		CodeClipboardUnavailable:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
