package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]struct {
		text  string
		want  Config
		level slog.Level
	}{
		"Empty": {"", DefaultConfig(), slog.LevelWarn},
		"Partial": {"prompt: '> '\ndebug: true\n", Config{
			Prompt:       "> ",
			Continuation: "  ... ",
			History:      "~/.holo_history",
			LogLevel:     "warn",
			Debug:        true,
		}, slog.LevelWarn},
		"Full": {"prompt: a\ncontinuation: b\nhistory: ''\nlog_level: debug\n", Config{
			Prompt:       "a",
			Continuation: "b",
			LogLevel:     "debug",
		}, slog.LevelDebug},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(c.text), 0o600))
			cfg, err := LoadConfig(path)
			require.NoError(t, err)
			assert.Equal(t, c.want, cfg)
			l, err := cfg.Level()
			require.NoError(t, err)
			assert.Equal(t, c.level, l)
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
	path := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colour: blue\n"), 0o600))
	_, err = LoadConfig(path)
	assert.Error(t, err)
	_, err = Config{LogLevel: "loud"}.Level()
	assert.Error(t, err)
}

func TestHistoryPath(t *testing.T) {
	assert.Equal(t, "", Config{}.HistoryPath())
	assert.Equal(t, "/tmp/h", Config{History: "/tmp/h"}.HistoryPath())
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	assert.Equal(t, filepath.Join(home, ".h"), Config{History: "~/.h"}.HistoryPath())
}

func TestPlatform(t *testing.T) {
	assert.NotEmpty(t, platform())
}
