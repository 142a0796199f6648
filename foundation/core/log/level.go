// File: level.go
// Title: Log Levels
// Description: Defines log levels and their parsing.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Dropped audit level and ANSI colors

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is the most verbose level, e.g. every reflow step
	LevelTrace Level = iota

	// LevelDebug provides detailed information for debugging purposes
	LevelDebug

	// LevelInfo represents general informational messages
	LevelInfo

	// LevelWarn indicates potentially harmful situations
	LevelWarn

	// LevelError represents error conditions that need attention
	LevelError

	// LevelFatal represents errors that terminate the program
	LevelFatal
)

type levelName struct {
	long, short string
	aliases     []string
}

var levelNames = [...]levelName{
	LevelTrace: {"trace", "TRC", nil},
	LevelDebug: {"debug", "DBG", nil},
	LevelInfo:  {"info", "INF", []string{"information"}},
	LevelWarn:  {"warn", "WRN", []string{"warning"}},
	LevelError: {"error", "ERR", []string{"err"}},
	LevelFatal: {"fatal", "FTL", nil},
}

func (l Level) names() (levelName, bool) {
	if l < 0 || int(l) >= len(levelNames) {
		return levelName{}, false
	}
	return levelNames[l], true
}

// String returns the lower case level name, "unknown" when out of range
func (l Level) String() string {
	if n, ok := l.names(); ok {
		return n.long
	}
	return "unknown"
}

// ShortString returns the three letter tag used by the text formatter
func (l Level) ShortString() string {
	if n, ok := l.names(); ok {
		return n.short
	}
	return "???"
}

// ShouldLog reports whether l passes the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel accepts the long name, the short tag or an alias, in any case.
// Unknown input yields LevelInfo and a *ParseError.
func ParseLevel(level string) (Level, error) {
	want := strings.ToLower(strings.TrimSpace(level))
	for i, n := range levelNames {
		if want == n.long || want == strings.ToLower(n.short) {
			return Level(i), nil
		}
		for _, alias := range n.aliases {
			if want == alias {
				return Level(i), nil
			}
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError is returned for an unknown level or format name
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}
