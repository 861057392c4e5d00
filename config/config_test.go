package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvtherm.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Run.Workers)
	assert.Equal(t, time.Duration(0), cfg.Run.Timeout.Duration())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromPath(t *testing.T) {
	path := writeFile(t, `
log:
  level: debug
  format: json
run:
  workers: 3
  timeout: 1m30s
  pretty: true
metrics:
  textfile: /tmp/lvtherm.prom
`)
	cfg, used, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 3, cfg.Run.Workers)
	assert.Equal(t, 90*time.Second, cfg.Run.Timeout.Duration())
	assert.True(t, cfg.Run.Pretty)
	assert.Equal(t, "/tmp/lvtherm.prom", cfg.Metrics.Textfile)
}

func TestLoadFromPath_PartialGetsDefaults(t *testing.T) {
	cfg, _, err := LoadFromPath(writeFile(t, "run:\n  pretty: true\n"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Run.Workers)
}

func TestLoadFromPath_Errors(t *testing.T) {
	_, _, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")

	_, _, err = LoadFromPath(writeFile(t, "log: [unclosed"))
	assert.ErrorContains(t, err, "parse config")

	_, _, err = LoadFromPath(writeFile(t, "run:\n  timeout: soon\n"))
	assert.ErrorContains(t, err, "parse config")

	_, _, err = LoadFromPath(writeFile(t, "log:\n  level: loud\n"))
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorContains(t, err, "Config.Log.Level")

	_, _, err = LoadFromPath(writeFile(t, "run:\n  workers: -2\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, _, err = LoadFromPath(writeFile(t, "run:\n  timeout: -1s\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	cfg, path, err := Load()
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, DefaultConfig(), cfg)

	file := writeFile(t, "log:\n  format: json\n")
	t.Setenv(EnvConfigPath, file)
	cfg, path, err = Load()
	require.NoError(t, err)
	assert.Equal(t, file, path)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Run.Timeout = Duration(5 * time.Second)
	cfg.Log.Level = "warn"
	path := filepath.Join(t.TempDir(), "nested", "lvtherm.yaml")

	require.NoError(t, cfg.Save(path))
	back, _, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", slog.Int("k", 1))
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	LogConfig{Level: "debug", Format: "text"}.NewLogger(&buf).Debug("dbg")
	assert.Contains(t, buf.String(), "msg=dbg")

	assert.Equal(t, slog.LevelError, LogConfig{Level: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, LogConfig{}.SlogLevel())
}
