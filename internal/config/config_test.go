package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentinel-lite/sentinel/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, "http://localhost:8000", cfg.API.URL)
	assert.Zero(t, cfg.API.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Refresh.Interval)
	assert.Equal(t, 3*time.Second, cfg.Notify.TTL)
	assert.Equal(t, ColorAuto, cfg.Output.Color)
	assert.Equal(t, filepath.Join(os.TempDir(), "sentinel.log"), cfg.LogFile)
	assert.NoError(t, Validate(cfg))
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
version: 1
api:
  url: https://sentinel.internal:8443/
  timeout: 10s
refresh:
  interval: 1m
notify:
  ttl: 5s
output:
  color: NEVER
log_file: ~/sentinel-debug.log
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "https://sentinel.internal:8443", cfg.API.URL, "trailing slash is trimmed")
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, time.Minute, cfg.Refresh.Interval)
	assert.Equal(t, 5*time.Second, cfg.Notify.TTL)
	assert.Equal(t, ColorNever, cfg.Output.Color)
	assert.Equal(t, filepath.Join(home, "sentinel-debug.log"), cfg.LogFile)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "api:\n  url: http://10.0.0.2:8000\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.2:8000", cfg.API.URL)
	assert.Equal(t, DefaultRefreshInterval, cfg.Refresh.Interval)
	assert.Equal(t, DefaultNotifyTTL, cfg.Notify.TTL)
	assert.Equal(t, ColorAuto, cfg.Output.Color)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "api:\n  url: http://from-file:8000\n")
	t.Setenv("SENTINEL_API_URL", "http://from-env:9000")
	t.Setenv("SENTINEL_REFRESH_INTERVAL", "5s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:9000", cfg.API.URL)
	assert.Equal(t, 5*time.Second, cfg.Refresh.Interval)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "api: [unclosed"))
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})

	t.Run("bad duration", func(t *testing.T) {
		_, err := Load(writeConfig(t, "refresh:\n  interval: soon\n"))
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})
}

func TestFind(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(PathEnv, "")

	t.Run("nothing found", func(t *testing.T) {
		path, err := Find("")
		require.NoError(t, err)
		assert.Empty(t, path)
	})

	t.Run("explicit missing is an error", func(t *testing.T) {
		_, err := Find(filepath.Join(home, "missing.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})

	t.Run("explicit wins", func(t *testing.T) {
		explicit := writeConfig(t, "version: 1\n")
		path, err := Find(explicit)
		require.NoError(t, err)
		assert.Equal(t, explicit, path)
	})

	t.Run("env var", func(t *testing.T) {
		fromEnv := writeConfig(t, "version: 1\n")
		t.Setenv(PathEnv, fromEnv)
		path, err := Find("")
		require.NoError(t, err)
		assert.Equal(t, fromEnv, path)
	})

	t.Run("global file", func(t *testing.T) {
		global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		require.NoError(t, os.MkdirAll(filepath.Dir(global), 0755))
		require.NoError(t, os.WriteFile(global, []byte("version: 1\n"), 0644))

		path, err := Find("")
		require.NoError(t, err)
		assert.Equal(t, global, path)
	})
}

func TestLoadOrDefault_NoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(PathEnv, "")
	t.Setenv("SENTINEL_OUTPUT_COLOR", "always")

	cfg, path, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, DefaultAPIURL, cfg.API.URL)
	assert.Equal(t, ColorAlways, cfg.Output.Color, "env applies without a file")
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("USER", "analyst")

	assert.Equal(t, filepath.Join(home, "x.log"), ExpandPath("~/x.log"))
	assert.Equal(t, home+"/x.log", ExpandPath("${HOME}/x.log"))
	assert.Equal(t, "/var/log/analyst.log", ExpandPath("/var/log/${USER}.log"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, home, ExpandTilde("~"))
}
