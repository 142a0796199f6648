// Package log provides structured logging for the currencyedit module.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logger with JSON, text and logfmt output.
//              Loggers are immutable: With* methods return configured copies,
//              so a field can carry its own name and id without affecting
//              the parent logger.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Removed async worker, audit level and request tracing,
//                       deterministic field order in every format
//
// Usage:
//   import mdwlog "github.com/msto63/currencyedit/foundation/core/log"
//
//   logger := mdwlog.NewWithConfig(mdwlog.Config{
//     Level:  mdwlog.LevelDebug,
//     Format: mdwlog.FormatLogfmt,
//     Output: file,
//     Name:   "amount",
//   })
//
//   logger.Debug("reflow", mdwlog.Fields{"text": "1 234", "cursor": 5})
//   logger.LogError(err)
package log
