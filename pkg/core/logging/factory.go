// ============================================================================
// currencyedit - Currency input for the terminal
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"path/filepath"

	mdwerror "github.com/msto63/currencyedit/foundation/core/error"
	mdwlog "github.com/msto63/currencyedit/foundation/core/log"
	"github.com/msto63/currencyedit/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: json, text or logfmt
	Format string

	// File receives the output when set, appended to
	File string

	// Output is used when File is empty. Nil means stderr.
	Output io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "info",
		Format: "text",
	}
}

// FromConfig maps the logging section of the application config. Empty
// level and format keep the defaults.
func FromConfig(name string, cfg config.LoggingConfig) LoggerConfig {
	out := DefaultLoggerConfig(name)
	if cfg.Level != "" {
		out.Level = cfg.Level
	}
	if cfg.Format != "" {
		out.Format = cfg.Format
	}
	out.File = cfg.File
	return out
}

// NewLogger creates a foundation logger writing to a file or a writer
func NewLogger(cfg LoggerConfig) (*Logger, error) {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log level").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("logging.NewLogger").
			WithDetail("level", cfg.Level)
	}
	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log format").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("logging.NewLogger").
			WithDetail("format", cfg.Format)
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	var closer io.Closer
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, mdwerror.Wrap(err, "failed to create log directory").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("logging.NewLogger").
				WithDetail("file", cfg.File)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, mdwerror.Wrap(err, "failed to open log file").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("logging.NewLogger").
				WithDetail("file", cfg.File)
		}
		output = f
		closer = f
	}

	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})

	return &Logger{Logger: logger, name: cfg.Name, closer: closer}, nil
}

// NewQuietLogger creates a logger that discards output unless a file is
// configured. The terminal UI owns the screen, so it logs here.
func NewQuietLogger(cfg LoggerConfig) (*Logger, error) {
	if cfg.File == "" {
		cfg.Output = io.Discard
	}
	return NewLogger(cfg)
}
