package colors

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Debug(msg string, args ...any) { r.lines = append(r.lines, "debug:"+msg) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.lines = append(r.lines, "info:"+msg) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.lines = append(r.lines, "warn:"+msg) }
func (r *recordingLogger) Error(msg string, args ...any) { r.lines = append(r.lines, "error:"+msg) }

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	t.Cleanup(func() { SetOutput(prev) })
	return &buf
}

func TestConsoleOutput(t *testing.T) {
	tests := []struct {
		name   string
		emit   func(...string)
		prefix string
		color  string
	}{
		{"error", Error, "Error:", Red},
		{"warning", Warning, "Warning:", Yellow},
		{"info", Info, "Info:", Blue},
		{"success", Success, checkmark, Green},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureOutput(t)
			tt.emit("bridge", "unreachable")

			output := buf.String()
			assert.Contains(t, output, tt.prefix)
			assert.Contains(t, output, tt.color)
			assert.Contains(t, output, "bridge unreachable")
		})
	}
}

func TestDebugRespectsFlag(t *testing.T) {
	buf := captureOutput(t)
	t.Cleanup(func() { SetDebug(false) })

	SetDebug(false)
	Debug("hidden")
	assert.Empty(t, buf.String())

	SetDebug(true)
	Debug("shown")
	assert.Contains(t, buf.String(), "Debug:")
	assert.Contains(t, buf.String(), "shown")
}

func TestLoggerMirror(t *testing.T) {
	captureOutput(t)
	rec := &recordingLogger{}
	SetLogger(rec)
	t.Cleanup(func() { SetLogger(nil) })

	Warning("cache stale")
	Error("fetch failed")

	assert.Equal(t, []string{"warn:cache stale", "error:fetch failed"}, rec.lines)
}
