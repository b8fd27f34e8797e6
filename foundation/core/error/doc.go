// File: doc.go
// Title: Foundation Error Package Documentation
// Description: Structured errors with codes, severity and details, shared by
//              the scanner, parser, configuration loader and command line host.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Reduced to the codes used by the expression toolchain
//
// Usage:
//   import mlxerror "github.com/msto63/mLox/foundation/core/error"
//
//   err := mlxerror.New("unterminated string").
//     WithCode(mlxerror.CodeUnterminatedString).
//     WithDetail("line", 3)
//
//   wrapped := mlxerror.Wrap(err, "scan failed").WithOperation("scan")
//
//   if mlxerror.HasCode(wrapped, mlxerror.CodeUnterminatedString) {
//     // handle lexical errors specifically
//   }
package error
