// Package error provides structured, coded errors for the currencyedit module.
//
// Package: error
// Title: Coded Error Handling
// Description: Implements a structured error type carrying an error code, a
//              severity, the failing operation and free-form details. Codes
//              separate programmer mistakes (configuration errors) from
//              malformed input, so callers can react without string matching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Reduced to the codes used by the currency field,
//                       errors.Is/As aware helpers
//
// Usage:
//   import mdwerror "github.com/msto63/currencyedit/foundation/core/error"
//
//   err := mdwerror.New("minimum is greater than maximum").
//     WithCode(mdwerror.CodeInvalidBounds).
//     WithOperation("field.SetMin").
//     WithDetail("min", "10").
//     WithDetail("max", "5")
//
//   if mdwerror.HasCode(err, mdwerror.CodeInvalidBounds) {
//     // reject the assignment
//   }
package error
