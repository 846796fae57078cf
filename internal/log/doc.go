// Package log provides logging helpers built on top of the standard slog package.
//
// This package extends slog to provide:
//   - Truncation of long string values such as raw CSV records
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Usage
//
//	// Create a logger writing to stderr
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Debug("skipping row",
//	    "record", strings.Join(record, ","), // clamped to DefaultMaxValueLen
//	    "line", 42,
//	)
//
// Logs are meant for stderr. Reports are written to stdout by the report
// package, so both streams can be redirected independently.
package log
