package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("WORLD_FILE", "")
	t.Setenv("LOG_FILE", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.WorldFile)
	assert.Equal(t, "", cfg.LogFile)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadConfig_WorldFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: Manor\n"), 0644))

	t.Setenv("WORLD_FILE", path)
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, path, cfg.WorldFile)

	t.Setenv("WORLD_FILE", filepath.Join(dir, "missing.yaml"))
	_, err = LoadConfig()
	assert.Error(t, err)

	t.Setenv("WORLD_FILE", dir)
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for input, want := range tests {
		assert.Equal(t, want, parseLogLevel(input), input)
	}
}
