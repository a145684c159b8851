package logger

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/evandrocoan/DebugTools/core"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Default logger named after the running executable, every category
	// enabled, text lines to stdout.
	defaultLogger = NewBuilder(filepath.Base(os.Args[0])).Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Log emits a numeric-level message through the default logger
func Log(level core.Level, args ...interface{}) error {
	return Default().Log(level, args...)
}

// Logf emits a formatted numeric-level message through the default logger
func Logf(level core.Level, format string, args ...interface{}) error {
	return Default().Logf(level, format, args...)
}

// Debug emits a DEBUG message through the default logger
func Debug(args ...interface{}) error {
	return Default().Debug(args...)
}

// Debugf emits a formatted DEBUG message through the default logger
func Debugf(format string, args ...interface{}) error {
	return Default().Debugf(format, args...)
}

// Info emits an INFO message through the default logger
func Info(args ...interface{}) error {
	return Default().Info(args...)
}

// Infof emits a formatted INFO message through the default logger
func Infof(format string, args ...interface{}) error {
	return Default().Infof(format, args...)
}

// Warning emits a WARNING message through the default logger
func Warning(args ...interface{}) error {
	return Default().Warning(args...)
}

// Warningf emits a formatted WARNING message through the default logger
func Warningf(format string, args ...interface{}) error {
	return Default().Warningf(format, args...)
}

// Clean emits a prefix-less message through the default logger
func Clean(level core.Level, args ...interface{}) error {
	return Default().Clean(level, args...)
}

// NewLine emits an empty line through the default logger
func NewLine(level core.Level) error {
	return Default().NewLine(level)
}

// SetLevel replaces the default logger's bitmask
func SetLevel(mask core.Level) {
	Default().SetLevel(mask)
}
