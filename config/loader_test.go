package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rallysight/wrc-results-go/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err, "an explicitly named missing file is an error")

	// No explicit path and no config.yml in the working directory: defaults.
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "./entries", cfg.Output.EntriesDir)
	assert.Equal(t, "./events", cfg.Output.EventsDir)
	assert.Empty(t, cfg.API.SeasonURL)
	assert.False(t, cfg.Debug)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
api:
  seasonURL: https://example.test/season
  resultsURL: https://example.test/results
  timeoutMS: 5000
  userAgent: test-agent/1.0
output:
  entriesDir: /tmp/entries
  eventsDir: /tmp/events
debug: true
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/season", cfg.API.SeasonURL)
	assert.Equal(t, "https://example.test/results", cfg.API.ResultsURL)
	assert.Equal(t, 5000, cfg.API.TimeoutMS)
	assert.Equal(t, "test-agent/1.0", cfg.API.UserAgent)
	assert.Equal(t, "/tmp/entries", cfg.Output.EntriesDir)
	assert.True(t, cfg.Debug)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
api:
  resultsURL: https://file.test/results
`)
	t.Setenv("WRC_RESULTS_URL", "https://env.test/results")
	t.Setenv("WRC_TIMEOUT_MS", "2500")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.test/results", cfg.API.ResultsURL)
	assert.Equal(t, 2500, cfg.API.TimeoutMS)
}

func TestLoadRejectsInvalidURL(t *testing.T) {
	path := writeConfig(t, `
api:
  resultsURL: not-a-url
`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate config")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "api: [broken")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
