// Package integration holds tests that run the mLox foundation modules
// together: configuration, logging, structured errors, the scanner, the
// parser and the engine.
//
// Package: integration
// Title: mLox Foundation Integration Tests
// Description: Verifies behaviour across module boundaries. Configuration
//              feeds engine options, diagnostics become structured errors,
//              log entries of one run share a correlation ID.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of integration test suite
// - 2026-10-19 v0.2.0: Rewritten around the scan and parse pipeline
//
// Test Categories:
//
// Pipeline Tests (pipeline_integration_test.go):
// - Configuration to engine options
// - Reporter and returned error agree
// - Correlated structured log output
//
// Error Tests (error_integration_test.go):
// - Diagnostic kinds map to stable error codes and severities
// - Diagnostics survive wrapping through errors.As and HasCode
//
// Benchmarks (performance_test.go):
// - Scanning, parsing and full runs over generated input
//
// Running Integration Tests:
//
//	go test -v ./foundation/test/integration/
//	go test -v ./foundation/test/integration/ -bench=.
package integration
