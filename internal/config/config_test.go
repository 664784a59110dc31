package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadReadsYamlAndEnvOverrides(t *testing.T) {
	path := writeTempConfig(t, `
http:
  port: "8081"
spin:
  frame_interval: 20ms
  seed: 42
timeouts:
  operation: 10s
`)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("SHUTDOWN_TIMEOUT", "20s")
	t.Setenv("SPIN_EVENT_BUFFER", "16")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "9000", cfg.HTTP.Port)
	require.Equal(t, 10*time.Second, cfg.Timeouts.Operation)
	require.Equal(t, 20*time.Second, cfg.Timeouts.Shutdown)
	require.Equal(t, 20*time.Millisecond, cfg.Spin.FrameInterval)
	require.Equal(t, int64(42), cfg.Spin.Seed)
	require.Equal(t, 16, cfg.Spin.EventBuffer)
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeTempConfig(t, "{}\n"))

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.HTTP.Port)
	require.Zero(t, cfg.HTTP.WriteTimeout)
	require.Equal(t, time.Second/60, cfg.Spin.FrameInterval)
	require.Equal(t, 256, cfg.Spin.EventBuffer)
	require.Zero(t, cfg.Spin.Seed)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "stdout", cfg.Logging.Output)
	require.Equal(t, "openapi.yml", cfg.Swagger.SpecPath)
	require.Equal(t, "load/artifacts/results.bin", cfg.LoadTests.ResultsPath)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeTempConfig(t, "spin:\n  frame_interval: 2s\n"))
	_, err := Load()
	require.ErrorContains(t, err, "frame_interval")

	t.Setenv("CONFIG_PATH", writeTempConfig(t, "logging:\n  level: loud\n"))
	_, err = Load()
	require.ErrorContains(t, err, "logging.level")
}
