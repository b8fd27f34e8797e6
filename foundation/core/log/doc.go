// File: doc.go
// Title: Foundation Logging Package Documentation
// Description: Structured logging for the expression toolchain. Provides
//              levelled, field-based log entries with JSON, text and
//              console output and integration with foundation errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Console colours via lipgloss, correlation IDs per engine run
//
// Usage:
//   import mlxlog "github.com/msto63/mLox/foundation/core/log"
//
//   logger := mlxlog.New().
//     WithLevel(mlxlog.LevelDebug).
//     WithFormat(mlxlog.FormatConsole).
//     WithField("component", "lox-scanner")
//
//   logger.Debug("Scan completed", mlxlog.Fields{
//     "tokens": 12,
//     "lines":  3,
//   })
//
//   timer := logger.StartTimer("parse")
//   // ... parse
//   timer.Stop()
package log
