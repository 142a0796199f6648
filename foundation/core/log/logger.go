// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type: leveled structured logging with
//              persistent context fields and integration with the coded
//              error package.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-19 v0.2.0: Synchronous shared sink, Nop logger for embedded use,
//   dropped the package default logger

package log

import (
	"errors"
	"io"
	"os"
	"sync"

	mdwerror "github.com/msto63/currencyedit/foundation/core/error"
)

// Logger writes leveled entries through a Formatter. Derived loggers share
// the sink and its lock with their parent.
type Logger struct {
	level  Level
	format Formatter
	out    *sink
	name   string
	fields Fields
}

type sink struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *sink) write(p []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w.Write(p)
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// NewWithConfig creates a logger; a nil Output means stdout
func NewWithConfig(config Config) *Logger {
	w := config.Output
	if w == nil {
		w = os.Stdout
	}
	return &Logger{
		level:  config.Level,
		format: GetFormatter(config.Format),
		out:    &sink{w: w},
		name:   config.Name,
		fields: Fields{},
	}
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return NewWithConfig(Config{Level: LevelFatal + 1, Output: io.Discard})
}

func (l *Logger) derive(fields Fields) *Logger {
	d := *l
	d.fields = make(Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		d.fields[k] = v
	}
	for k, v := range fields {
		d.fields[k] = v
	}
	return &d
}

// WithOutput returns a copy writing to w with its own lock
func (l *Logger) WithOutput(w io.Writer) *Logger {
	d := l.derive(nil)
	d.out = &sink{w: w}
	return d
}

// WithName returns a copy tagged with name
func (l *Logger) WithName(name string) *Logger {
	d := l.derive(nil)
	d.name = name
	return d
}

// WithField returns a copy that adds key to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.derive(Fields{key: value})
}

// WithFields returns a copy that adds fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	return l.derive(fields)
}

func (l *Logger) Trace(message string, fields ...Fields) { l.emit(LevelTrace, message, nil, fields) }
func (l *Logger) Debug(message string, fields ...Fields) { l.emit(LevelDebug, message, nil, fields) }
func (l *Logger) Info(message string, fields ...Fields)  { l.emit(LevelInfo, message, nil, fields) }
func (l *Logger) Warn(message string, fields ...Fields)  { l.emit(LevelWarn, message, nil, fields) }
func (l *Logger) Error(message string, fields ...Fields) { l.emit(LevelError, message, nil, fields) }

// ErrorWithErr logs message at error level with err attached
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.emit(LevelError, message, err, fields)
}

// WarnWithErr logs message at warn level with err attached
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.emit(LevelWarn, message, err, fields)
}

// LogError logs err. Coded errors are flattened into error_* fields and
// logged at a level derived from their severity: low is info, medium is
// warn, anything higher is error.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var coded *mdwerror.Error
	if !errors.As(err, &coded) {
		l.emit(LevelError, err.Error(), err, nil)
		return
	}

	fields := Fields{
		"error_code":     coded.Code().String(),
		"error_severity": coded.Severity().String(),
	}
	if op := coded.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range coded.Details() {
		fields["error_"+k] = v
	}

	level := LevelError
	switch coded.Severity() {
	case mdwerror.SeverityLow:
		level = LevelInfo
	case mdwerror.SeverityMedium:
		level = LevelWarn
	}
	l.emit(level, err.Error(), nil, []Fields{fields})
}

// IsLevelEnabled reports whether entries at level are written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.level)
}

func (l *Logger) GetLevel() Level { return l.level }

func (l *Logger) Name() string { return l.name }

func (l *Logger) emit(level Level, message string, err error, extra []Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.Error = err
	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	for _, fs := range extra {
		for k, v := range fs {
			entry.Fields[k] = v
		}
	}

	if formatted, ferr := l.format.Format(entry); ferr == nil {
		l.out.write(formatted)
	}
}
