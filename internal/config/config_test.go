package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cristianoliveira/alfred-hue/internal/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every config location at a temp dir and silences warnings.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("alfred_workflow_data", "")
	t.Setenv("alfred_workflow_cache", "")
	t.Setenv(EnvPrefix+"CONFIG_PATH", "")
	prev := colors.SetOutput(&discard{})
	t.Cleanup(func() { colors.SetOutput(prev) })
	return dir
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func TestLoadAndGet(t *testing.T) {
	isolate(t)
	Load()

	require.Equal(t, "default", Get("missing", "default"))
	assert.Equal(t, "json", Get("output_format", ""))
	assert.Equal(t, 3*time.Second, GetDuration("bridge_timeout", 0))
	assert.False(t, GetBool("logging_enabled", true))
	assert.Equal(t, 10, GetInt("logging_max_files", 0))
}

func TestDerivedPaths(t *testing.T) {
	dir := isolate(t)
	Load()

	stateDir := filepath.Join(dir, "state", "alfred-hue")
	assert.Equal(t, filepath.Join(stateDir, "lights.db"), Get("cache_path", ""))
	assert.Equal(t, filepath.Join(stateDir, "presets"), Get("presets_dir", ""))
}

func TestAlfredWorkflowDirs(t *testing.T) {
	dir := isolate(t)
	t.Setenv("alfred_workflow_data", filepath.Join(dir, "data"))
	t.Setenv("alfred_workflow_cache", filepath.Join(dir, "cache"))
	Load()

	assert.Equal(t, filepath.Join(dir, "cache", "lights.db"), Get("cache_path", ""))
	assert.Equal(t, filepath.Join(dir, "data", "presets"), Get("presets_dir", ""))
}

func TestFileThenEnvPrecedence(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	content := "bridge_host = \"10.0.0.2\"\nbridge_username = \"from-file\"\nlogging_max_files = 3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv(EnvPrefix+"CONFIG_PATH", path)
	t.Setenv(EnvPrefix+"BRIDGE_USERNAME", "from-env")

	Load()

	assert.Equal(t, "10.0.0.2", Get("bridge_host", ""))
	assert.Equal(t, "from-env", Get("bridge_username", ""))
	assert.Equal(t, 3, GetInt("logging_max_files", 0))
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	isolate(t)
	t.Setenv(EnvPrefix+"OUTPUT_FORMAT", "yaml")
	t.Setenv(EnvPrefix+"BRIDGE_TIMEOUT", "soon")
	t.Setenv(EnvPrefix+"DEBUG", "maybe")
	t.Setenv(EnvPrefix+"LOGGING_MAX_FILES", "-1")

	Load()

	assert.Equal(t, "json", Get("output_format", ""))
	assert.Equal(t, "3s", Get("bridge_timeout", ""))
	assert.Equal(t, "false", Get("debug", ""))
	assert.Equal(t, "10", Get("logging_max_files", ""))
}

func TestValidators(t *testing.T) {
	isolate(t)

	tests := []struct {
		name      string
		validator Validator
		value     string
		want      string
	}{
		{"bool yes", BoolValidator(), "YES", "true"},
		{"bool off", BoolValidator(), "off", "false"},
		{"bool empty", BoolValidator(), "", "dflt"},
		{"enum upper", EnumValidator(map[string]bool{"xml": true}), "XML", "xml"},
		{"enum unknown", EnumValidator(map[string]bool{"xml": true}), "csv", "dflt"},
		{"int ok", PositiveIntValidator(), "4", "4"},
		{"int zero", PositiveIntValidator(), "0", "dflt"},
		{"duration ok", DurationValidator(false), "1500ms", "1.5s"},
		{"duration empty allowed", DurationValidator(true), "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.validator("key", tt.value, "dflt")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
