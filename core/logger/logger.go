// Package logger defines the logging interface used across heron. The
// zerolog-backed implementation lives in infra/logger so that core packages
// stay free of infrastructure imports.
package logger

// Logger exposes logging methods for common severity levels.
type Logger interface {
	Debugf(format string, args ...any)
	// Debugw logs a message with structured fields.
	Debugw(msg string, fields map[string]any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
