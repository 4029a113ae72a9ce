package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// -- Load tests --

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "decline-insights", cfg.Application)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, 200*time.Millisecond, cfg.Search.Debounce)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "logger:\n  level: debug\noutput:\n  format: json\nsearch:\n  debounce: 1s\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, time.Second, cfg.Search.Debounce)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "logger:\n  level: debug\n")
	t.Setenv("DECLINE_LOGGER__LEVEL", "warn")
	t.Setenv("DECLINE_OUTPUT__FORMAT", "dump")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "dump", cfg.Output.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, "logger:\n  level: loud\n  format: xml\n")

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "logger.level")
	assert.Contains(t, err.Error(), "logger.format")
}

// -- Validate tests --

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Config{
		Logger: Logger{Level: "nope", Format: "yaml"},
		Output: Output{Format: "html"},
	}

	err := cfg.Validate()

	require.Error(t, err)
	for _, key := range []string{"application", "logger.level", "logger.format", "output.format", "search.debounce"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := Config{
		Application: "x",
		Logger:      Logger{Level: "error", Format: "text"},
		Output:      Output{Format: "dump"},
		Search:      Search{Debounce: time.Millisecond},
	}

	assert.NoError(t, cfg.Validate())
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "logger.level", envKey("DECLINE_LOGGER__LEVEL"))
	assert.Equal(t, "application", envKey("DECLINE_APPLICATION"))
}
