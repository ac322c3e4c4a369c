package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setHome(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)

	return dir
}

func writeConfig(t *testing.T, content string) {
	t.Helper()

	require.NoError(t, os.WriteFile(Path(), []byte(content), 0o600))
}

func TestPath(t *testing.T) {
	t.Run("home override", func(t *testing.T) {
		dir := setHome(t)
		assert.Equal(t, filepath.Join(dir, "cfg.toml"), Path())
	})

	t.Run("default home", func(t *testing.T) {
		t.Setenv(HomeEnv, "")
		t.Setenv("HOME", "/home/operator")
		assert.Equal(t, "/home/operator/.chainnexus/cfg.toml", Path())
	})
}

func TestLoadMissingFile(t *testing.T) {
	setHome(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)

	_, err = os.Stat(Path())
	assert.True(t, os.IsNotExist(err), "load must not create the config file")
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expected    *Config
		expectedErr string
	}{
		{
			name:    "empty file gets defaults",
			content: "",
			expected: &Config{
				Version: 1,
				Log:     Log{Level: "info", Format: FormatAuto},
			},
		},
		{
			name:    "partial log section",
			content: "[log]\nlevel = \"debug\"\n",
			expected: &Config{
				Version: 1,
				Log:     Log{Level: "debug", Format: FormatAuto},
			},
		},
		{
			name:    "all fields",
			content: "version = 2\n[log]\nlevel = \"warn\"\nformat = \"json\"\n",
			expected: &Config{
				Version: 2,
				Log:     Log{Level: "warn", Format: FormatJSON},
			},
		},
		{
			name:        "malformed toml",
			content:     "version = \n",
			expectedErr: "failed to decode config",
		},
		{
			name:        "unknown level",
			content:     "[log]\nlevel = \"loud\"\n",
			expectedErr: "invalid log level 'loud'",
		},
		{
			name:        "level with offset",
			content:     "[log]\nlevel = \"info+2\"\n",
			expectedErr: "invalid log level 'info+2'",
		},
		{
			name:        "unknown format",
			content:     "[log]\nformat = \"xml\"\n",
			expectedErr: "invalid log format 'xml'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setHome(t)
			writeConfig(t, tt.content)

			cfg, err := Load()
			if tt.expectedErr != "" {
				assert.ErrorContains(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestSave(t *testing.T) {
	dir := setHome(t)
	t.Setenv(HomeEnv, filepath.Join(dir, "nested"))

	cfg := Defaults()
	cfg.Log.Level = "error"
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestParseLevel(t *testing.T) {
	valid := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	for name, expected := range valid {
		t.Run(name, func(t *testing.T) {
			level, err := ParseLevel(name)
			require.NoError(t, err)
			assert.Equal(t, expected, level)
		})
	}

	for _, name := range []string{"", "info+2", "debug-4", "WARN+1", "INFO", "trace"} {
		t.Run("reject "+name, func(t *testing.T) {
			_, err := ParseLevel(name)
			assert.ErrorContains(t, err, "invalid log level")
		})
	}
}

func TestWriteAtomicRenameFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.toml")

	// A non-empty directory in the way makes the rename fail.
	require.NoError(t, os.MkdirAll(filepath.Join(path, "occupied"), 0o755))

	err := writeAtomic(path, []byte("version = 1\n"))
	require.Error(t, err)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file must be removed")
}

func TestLevelFallback(t *testing.T) {
	cfg := &Config{Log: Log{Level: "bogus"}}
	assert.Equal(t, slog.LevelInfo, cfg.Level())

	cfg.Log.Level = "debug"
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}
