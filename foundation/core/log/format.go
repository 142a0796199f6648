// File: format.go
// Title: Log Output Formats
// Description: Implements JSON, text and logfmt formatters for log entries.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with JSON, text, console and logfmt
// - 2026-10-19 v0.2.0: Console format folded into text, stable key order,
//   shared line builder for text and logfmt

package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format selects how entries are rendered
type Format int

const (
	FormatJSON Format = iota
	FormatText
	FormatLogfmt
)

var formatNames = map[Format]string{
	FormatJSON:   "json",
	FormatText:   "text",
	FormatLogfmt: "logfmt",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat accepts json, text (or console) and logfmt. Unknown input
// yields FormatJSON and a *ParseError.
func ParseFormat(format string) (Format, error) {
	want := strings.ToLower(strings.TrimSpace(format))
	if want == "console" {
		return FormatText, nil
	}
	for f, name := range formatNames {
		if name == want {
			return f, nil
		}
	}
	return FormatJSON, &ParseError{Input: format, Type: "format"}
}

// Formatter renders one entry, newline included
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// JSONFormatter writes one JSON object per entry. Errors that marshal
// themselves, like foundation errors, add an error_details object.
type JSONFormatter struct {
	TimestampFormat string
}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+6)
	for k, v := range entry.Fields {
		data[k] = jsonValue(v)
	}
	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message
	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if entry.Error != nil {
		data["error"] = entry.Error.Error()
		if m, ok := entry.Error.(json.Marshaler); ok {
			if raw, err := m.MarshalJSON(); err == nil {
				data["error_details"] = json.RawMessage(raw)
			}
		}
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

func jsonValue(v interface{}) interface{} {
	switch t := v.(type) {
	case error:
		return t.Error()
	case json.Marshaler:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return v
	}
}

// line collects space separated tokens of a text or logfmt entry
type line struct {
	b strings.Builder
}

func (l *line) add(format string, args ...interface{}) {
	if l.b.Len() > 0 {
		l.b.WriteByte(' ')
	}
	fmt.Fprintf(&l.b, format, args...)
}

func (l *line) bytes() []byte {
	l.b.WriteByte('\n')
	return []byte(l.b.String())
}

// TextFormatter writes "time [LVL] {logger} message [k=v ...] error=..."
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05.000"}
}

func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var l line
	if !f.DisableTimestamp {
		l.add("%s", entry.Timestamp.Format(f.TimestampFormat))
	}
	l.add("[%s]", entry.Level.ShortString())
	if entry.Logger != "" {
		l.add("{%s}", entry.Logger)
	}
	l.add("%s", entry.Message)

	if keys := entry.Fields.Keys(); len(keys) > 0 {
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = fmt.Sprintf("%s=%v", k, entry.Fields[k])
		}
		l.add("[%s]", strings.Join(pairs, " "))
	}
	if entry.Error != nil {
		l.add("error=%q", entry.Error.Error())
	}
	return l.bytes(), nil
}

// LogfmtFormatter writes key=value pairs, quoting strings and Stringers
type LogfmtFormatter struct {
	TimestampFormat string
}

func NewLogfmtFormatter() *LogfmtFormatter {
	return &LogfmtFormatter{TimestampFormat: time.RFC3339}
}

func (f *LogfmtFormatter) Format(entry *Entry) ([]byte, error) {
	var l line
	l.add("timestamp=%s", entry.Timestamp.Format(f.TimestampFormat))
	l.add("level=%s", entry.Level)
	l.add("message=%q", entry.Message)
	if entry.Logger != "" {
		l.add("logger=%s", entry.Logger)
	}
	for _, k := range entry.Fields.Keys() {
		switch v := entry.Fields[k].(type) {
		case string:
			l.add("%s=%q", k, v)
		case fmt.Stringer:
			l.add("%s=%q", k, v.String())
		default:
			l.add("%s=%v", k, v)
		}
	}
	if entry.Error != nil {
		l.add("error=%q", entry.Error.Error())
	}
	return l.bytes(), nil
}

// GetFormatter returns the formatter for format, JSON when unknown
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	case FormatLogfmt:
		return NewLogfmtFormatter()
	default:
		return NewJSONFormatter()
	}
}
