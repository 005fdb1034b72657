// Package integration provides comprehensive integration tests for the mCW Foundation library.
//
// Package: integration
// Title: mCW Foundation Integration Tests
// Description: This package contains integration tests that verify the correct
//              interaction between different mCW foundation modules, ensuring
//              consistent behavior, error handling, and performance characteristics
//              across module boundaries.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-03-06
// Modified: 2026-03-06
//
// Change History:
// - 2026-03-06 v0.1.0: Initial implementation of integration test suite
//
// Test Categories:
//
// Module Integration Tests (module_integration_test.go):
// - Cross-module error handling consistency
// - Data flow between modules (config → log, stringx → sdc, sdc → validation)
// - Validation pattern integration
// - Performance characteristics under realistic loads
// - Error recovery and graceful degradation
//
// Error Integration Tests (error_integration_test.go):
// - Standardized error format compliance across all modules
// - Error severity level consistency
// - Error code category and exit code mapping
// - Error wrapping and unwrapping through module boundaries
// - Context preservation in error chains
//
// Performance Integration Tests (performance_test.go):
// - Constraint parsing benchmarks
// - Memory allocation analysis
// - Scalability testing with varying deck sizes
// - Concurrency performance verification
// - Real-world scenario performance testing
//
// Test Coverage:
//
// The integration tests cover the following critical integration points:
//
// 1. Error Handling Integration:
//    - All modules use standardized mCW error types
//    - Consistent severity levels derived from error codes
//    - Error context preservation through module boundaries
//    - Exit code mapping the CLI relies on
//
// 2. Data Flow Validation:
//    - Config file settings → logger construction (config → log)
//    - Input cleanup → constraint parsing (stringx → sdc)
//    - Parsed clocks → validation chains (sdc → validation)
//    - Error propagation through processing pipelines
//
// 3. Performance Integration:
//    - Constraint parsing across deck sizes
//    - Memory allocation patterns
//    - Diagnostic collection under bad input
//    - Thread-safety verification
//
// 4. Real-World Scenarios:
//    - Constraint review pipelines
//    - Strict-mode failure handling with exit codes
//    - Structured logging of classified errors
//
// Running Integration Tests:
//
// To run all integration tests:
//   go test -v ./test/integration/
//
// To run specific test categories:
//   go test -v ./test/integration/ -run TestErrorHandling
//   go test -v ./test/integration/ -run TestCrossModule
//   go test -v ./test/integration/ -run TestPerformance
//
// To run performance benchmarks:
//   go test -v ./test/integration/ -bench=.
//   go test -v ./test/integration/ -bench=BenchmarkConstraintParsing
//
// Integration Test Requirements:
//
// 1. All modules must pass error handling integration tests
// 2. Cross-module data flows must be validated
// 3. Performance benchmarks must meet defined thresholds
// 4. Memory allocation patterns must be reasonable
// 5. Thread-safety must be verified under concurrency
//
// Failure Investigation:
//
// When integration tests fail, check:
// 1. Module-specific unit tests are passing
// 2. Error handling patterns are consistent
// 3. API changes haven't broken integration points
// 4. Performance regressions in cross-module operations
// 5. Memory leaks or excessive allocations
//
// Dependencies:
//
// These integration tests depend on:
// - core/error: mCW error framework
// - core/log: Structured logging
// - core/config: Configuration file loading
// - core/validation: Validation chains and common rules
// - utils/stringx: String manipulation utilities
// - sdc: Constraint parsing facade
// - sdc/parser: Constraint parser internals
//
// Best Practices:
//
// 1. Integration tests should focus on module boundaries
// 2. Test realistic usage patterns and data flows
// 3. Verify error propagation and context preservation
// 4. Include performance verification for critical paths
// 5. Test both success and failure scenarios
// 6. Verify thread-safety under concurrent access
//
package integration
