// File: error.go
// Title: Core Error Implementation
// Description: Implements the Error type with code, severity, operation and
//              details. It satisfies the standard error interface and works
//              with errors.Is / errors.As through Unwrap.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2026-10-19 v0.2.0: Dropped request/user tracing and stack capture,
//                       code lookups follow wrapped chains

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Error carries a message, an optional cause and the metadata used for
// logging and for branching on failures with HasCode.
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time
	operation string
	details   map[string]interface{}

	// set once WithSeverity overrides the code default
	pinned bool
}

func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   map[string]interface{}{},
	}
}

func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap puts message in front of err. A coded err passes its code, severity
// and details on to the wrapper. Wrap(nil, ...) is nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	w := New(message)
	w.cause = err
	if inner, ok := find(err); ok {
		w.code, w.severity, w.pinned = inner.code, inner.severity, inner.pinned
		for k, v := range inner.details {
			w.details[k] = v
		}
	}
	return w
}

func find(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.message
	}
	return e.message + ": " + e.cause.Error()
}

func (e *Error) Unwrap() error { return e.cause }

// WithCode sets the code; the severity follows it unless pinned
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if !e.pinned {
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity, e.pinned = severity, true
	return e
}

func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithOperation names the call that failed, e.g. "field.SetMax"
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

func (e *Error) Message() string      { return e.message }
func (e *Error) Code() Code           { return e.code }
func (e *Error) Severity() Severity   { return e.severity }
func (e *Error) Timestamp() time.Time { return e.timestamp }
func (e *Error) Operation() string    { return e.operation }

// Details returns a copy of the details
func (e *Error) Details() map[string]interface{} {
	out := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		out[k] = v
	}
	return out
}

func (e *Error) Detail(key string) (interface{}, bool) {
	v, ok := e.details[key]
	return v, ok
}

func (e *Error) sortedDetails() string {
	keys := make([]string, 0, len(e.details))
	for k := range e.details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = fmt.Sprintf("%s=%v", k, e.details[k])
	}
	return strings.Join(pairs, ", ")
}

// String is the multi-line form used in verbose CLI output
func (e *Error) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s\nCode: %s\nSeverity: %s", e.message, e.code, e.severity)
	if e.operation != "" {
		fmt.Fprintf(&b, "\nOperation: %s", e.operation)
	}
	if len(e.details) > 0 {
		fmt.Fprintf(&b, "\nDetails: {%s}", e.sortedDetails())
	}
	if e.cause != nil {
		fmt.Fprintf(&b, "\nCause: %s", e.cause)
	}
	return b.String()
}

type jsonError struct {
	Message   string                 `json:"message"`
	Code      Code                   `json:"code"`
	Severity  string                 `json:"severity"`
	Timestamp string                 `json:"timestamp"`
	Operation string                 `json:"operation,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Cause     string                 `json:"cause,omitempty"`
}

// MarshalJSON lets JSON log output embed the error metadata
func (e *Error) MarshalJSON() ([]byte, error) {
	j := jsonError{
		Message:   e.message,
		Code:      e.code,
		Severity:  e.severity.String(),
		Timestamp: e.timestamp.Format(time.RFC3339),
		Operation: e.operation,
		Details:   e.details,
	}
	if e.cause != nil {
		j.Cause = e.cause.Error()
	}
	return json.Marshal(j)
}

// HasCode reports whether err or any coded error in its cause chain has code
func HasCode(err error, code Code) bool {
	for {
		e, ok := find(err)
		if !ok {
			return false
		}
		if e.code == code {
			return true
		}
		err = e.cause
	}
}

// GetCode returns the code of the outermost coded error, CodeUnknown otherwise
func GetCode(err error) Code {
	if e, ok := find(err); ok {
		return e.code
	}
	return CodeUnknown
}

// GetSeverity returns the severity of the outermost coded error, medium otherwise
func GetSeverity(err error) Severity {
	if e, ok := find(err); ok {
		return e.severity
	}
	return SeverityMedium
}
