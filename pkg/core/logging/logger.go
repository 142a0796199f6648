// ============================================================================
// currencyedit - Currency input for the terminal
// ============================================================================
//
// Package:     logging
// Description: Application loggers built on the foundation logger
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"

	mdwlog "github.com/msto63/currencyedit/foundation/core/log"
)

// Logger is a foundation logger that may own its output file
type Logger struct {
	*mdwlog.Logger
	name   string
	closer io.Closer
}

// Name returns the name the logger was created with
func (l *Logger) Name() string {
	return l.name
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}
