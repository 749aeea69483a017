// Package colors provides colored console diagnostics.
//
// Everything is written to stderr: stdout carries the result payload read by
// the launcher.
package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Color constants
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Blue   = "\033[0;34m"
	Cyan   = "\033[0;36m"
	Reset  = "\033[0m"
)

const checkmark = "✓"

// Logger defines the interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	debugEnabled = false
	mu           sync.RWMutex
	out          io.Writer = os.Stderr
	logger       Logger
)

func init() {
	if val := os.Getenv("ALFRED_HUE_DEBUG"); val == "true" || val == "1" {
		debugEnabled = true
	}
}

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugEnabled = enabled
}

// SetLogger sets the structured logger to mirror console output.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetOutput redirects console output and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

// emit writes one line and mirrors it to the logger when one is set.
func emit(color, prefix, msg string, mirror func(Logger, string)) {
	mu.RLock()
	w, l := out, logger
	mu.RUnlock()
	if l != nil {
		mirror(l, msg)
	}
	if _, err := fmt.Fprintf(w, "%s%s%s %s\n", color, prefix, Reset, msg); err != nil {
		// last resort, never recurse
		fmt.Fprintf(os.Stderr, "%s %s\n", prefix, msg)
	}
}

// Error outputs an error message.
func Error(msgs ...string) {
	emit(Red, "Error:", strings.Join(msgs, " "), func(l Logger, m string) { l.Error(m) })
}

// Warning outputs a warning message.
func Warning(msgs ...string) {
	emit(Yellow, "Warning:", strings.Join(msgs, " "), func(l Logger, m string) { l.Warn(m) })
}

// Success outputs a success message.
func Success(msgs ...string) {
	emit(Green, checkmark, strings.Join(msgs, " "), func(l Logger, m string) { l.Info(m, "type", "success") })
}

// Info outputs an informational message.
func Info(msgs ...string) {
	emit(Blue, "Info:", strings.Join(msgs, " "), func(l Logger, m string) { l.Info(m) })
}

// Debug outputs a debug message if debug is enabled.
func Debug(msgs ...string) {
	mu.RLock()
	enabled := debugEnabled
	mu.RUnlock()
	if !enabled {
		return
	}
	emit(Cyan, "Debug:", strings.Join(msgs, " "), func(l Logger, m string) { l.Debug(m) })
}
