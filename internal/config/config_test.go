package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/raykavin/plotspec/pkg/logger"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	config, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "info", config.Log.Level)
	require.Equal(t, BackendZerolog, config.Log.Backend)
	require.False(t, config.Cache.Enabled)
	require.Equal(t, DefaultCachePath, config.Cache.Path)
	require.Equal(t, 24*time.Hour, config.Cache.TTL)
	require.Equal(t, DefaultOutputDir, config.Output.Dir)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plotspec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
  backend: logrus
  format: json
cache:
  enabled: true
  ttl: 1d12h
export:
  plotly_url: https://example.test/plotly.js
`), 0o600))

	t.Setenv("PLOTSPEC_LOG_LEVEL", "warn")
	t.Setenv("PLOTSPEC_OUTPUT_DIR", "/tmp/out")

	config, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "warn", config.Log.Level)
	require.Equal(t, BackendLogrus, config.Log.Backend)
	require.True(t, config.Cache.Enabled)
	require.Equal(t, 36*time.Hour, config.Cache.TTL)
	require.Equal(t, "https://example.test/plotly.js", config.Export.PlotlyURL)
	require.Equal(t, "/tmp/out", config.Output.Dir)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	t.Setenv("PLOTSPEC_CACHE_TTL", "soon")
	_, err = Load("")
	require.Error(t, err)
}

func TestLoad_InvalidLevel(t *testing.T) {
	t.Setenv("PLOTSPEC_LOG_LEVEL", "loud")
	_, err := Load("")
	require.Error(t, err)
}

func TestConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer

	for _, backend := range []string{BackendZerolog, BackendLogrus} {
		config := &Config{Log: LogConfig{Level: "debug", Backend: backend, Format: "json"}}
		log, err := config.NewLogger(&buf)
		require.NoError(t, err, backend)
		require.Equal(t, logger.DebugLevel, log.GetLevel(), backend)
	}

	config := &Config{Log: LogConfig{Level: "info", Backend: "syslog"}}
	_, err := config.NewLogger(&buf)
	require.Error(t, err)
}

func TestSaveDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "plotspec.yaml")
	require.NoError(t, SaveDefault(path))

	config, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, BackendZerolog, config.Log.Backend)
	require.Equal(t, 24*time.Hour, config.Cache.TTL)
}
