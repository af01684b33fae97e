package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ProviderBackend, cfg.Provider)
	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, 800*time.Millisecond, cfg.DebounceDelay)
	assert.Equal(t, 5*time.Second, cfg.ErrorMessageTTL)
	assert.Equal(t, 3*time.Second, cfg.SuccessMessageTTL)
	assert.Equal(t, time.Duration(0), cfg.RequestTimeout)
	assert.Equal(t, 15.0, cfg.DefaultMinROE)
	assert.Equal(t, 10, cfg.DefaultYears)
	assert.Equal(t, 20, cfg.DefaultLimit)
	assert.False(t, cfg.Database.Enabled)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("provider", ProviderDemo)
	t.Setenv("debounceDelay", "1s500ms")
	t.Setenv("requestTimeout", "30s")
	t.Setenv("defaultMinRoe", "20")
	t.Setenv("enableDatabaseRecording", "true")
	t.Setenv("databaseName", "roe")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ProviderDemo, cfg.Provider)
	assert.Equal(t, 1500*time.Millisecond, cfg.DebounceDelay)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 20.0, cfg.DefaultMinROE)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "roe", cfg.Database.Name)
}

func TestFromEnvRejectsMalformedValues(t *testing.T) {
	t.Setenv("defaultYears", "ten")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "defaultYears")
}

func TestLoadReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.env")
	require.NoError(t, os.WriteFile(path, []byte("apiBaseUrl=http://analyzer:9000\n"), 0600))
	t.Setenv("apiBaseUrl", "")
	require.NoError(t, os.Unsetenv("apiBaseUrl"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://analyzer:9000", cfg.APIBaseURL)
}

func TestLoadToleratesMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
