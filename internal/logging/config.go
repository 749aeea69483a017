// Package logging provides structured file logging for alfred-hue.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cristianoliveira/alfred-hue/internal/config"
)

// Config controls the file logger.
type Config struct {
	Enabled  bool
	Level    string
	MaxFiles int
	// Dir is where log files go; empty selects LogDir.
	Dir string
	// Command and PID name the log file, one file per invocation.
	Command string
	PID     int
}

// DefaultConfig returns a disabled Config for the running process.
func DefaultConfig() Config {
	return Config{
		Level:    "info",
		MaxFiles: 10,
		Command:  filepath.Base(os.Args[0]),
		PID:      os.Getpid(),
	}
}

// settingsConfig reads the logging_* keys. Turning on debug also lowers the
// level to debug so the file matches what the console shows.
func settingsConfig() Config {
	cfg := DefaultConfig()
	cfg.Enabled = config.GetBool("logging_enabled", false)
	cfg.Level = config.Get("logging_level", cfg.Level)
	cfg.MaxFiles = config.GetInt("logging_max_files", cfg.MaxFiles)
	if config.GetBool("debug", false) {
		cfg.Level = "debug"
	}
	return cfg
}

// LogDir picks the first usable directory among <state_dir>/logs,
// <cache_dir>/logs and <tmp>/alfred-hue/logs.
func LogDir() (string, error) {
	var candidates []string
	for _, key := range []string{"state_dir", "cache_dir"} {
		if dir := config.Get(key, ""); dir != "" {
			candidates = append(candidates, filepath.Join(dir, "logs"))
		}
	}
	candidates = append(candidates, filepath.Join(os.TempDir(), "alfred-hue", "logs"))

	var lastErr error
	for _, dir := range candidates {
		if lastErr = usableDir(dir); lastErr == nil {
			return dir, nil
		}
	}
	return "", fmt.Errorf("no writable log directory: %w", lastErr)
}

// usableDir creates dir and checks a file can be written there.
func usableDir(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
