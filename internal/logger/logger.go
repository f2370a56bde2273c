// Package logger prints pipeline diagnostics to stderr. Everything
// except errors is gated behind the --verbose flag, so normal command
// output stays clean while ingestion and retrieval can narrate their
// stages when asked.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose toggles verbose output. Wired to the --verbose flag.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose reports whether verbose output is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects log output, normally os.Stderr. Tests use this
// to capture what a pipeline stage logged.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// emit writes one tagged line. Callers hold no locks.
func emit(tag, format string, gated bool, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if gated && !verbose {
		return
	}
	fmt.Fprintf(output, tag+format+"\n", args...)
}

// Debug logs fine-grained pipeline detail, verbose only.
func Debug(format string, args ...any) {
	emit("[DEBUG] ", format, true, args...)
}

// Info logs stage progress, verbose only.
func Info(format string, args ...any) {
	emit("[INFO] ", format, true, args...)
}

// Warn logs recoverable problems, verbose only.
func Warn(format string, args ...any) {
	emit("[WARN] ", format, true, args...)
}

// Error logs failures unconditionally.
func Error(format string, args ...any) {
	emit("[ERROR] ", format, false, args...)
}

// Section marks the start of a pipeline stage, verbose only.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
