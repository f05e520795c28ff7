package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Config holds the REPL settings read from a YAML file.
type Config struct {
	Prompt       string `yaml:"prompt"`
	Continuation string `yaml:"continuation"`
	// History is the path of the REPL history file. A leading ~/ refers to
	// the user's home directory. Empty disables history.
	History  string `yaml:"history"`
	LogLevel string `yaml:"log_level"`
	Debug    bool   `yaml:"debug"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Prompt:       "holo> ",
		Continuation: "  ... ",
		History:      "~/.holo_history",
		LogLevel:     "warn",
	}
}

// LoadConfig reads a YAML config file. Settings absent from the file keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.UnmarshalStrict(b, &cfg); err != nil {
		return cfg, fmt.Errorf("couldn't parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Level parses the configured log level.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	err := l.UnmarshalText([]byte(c.LogLevel))
	return l, err
}

// HistoryPath expands the history file path.
func (c Config) HistoryPath() string {
	if len(c.History) < 2 || c.History[:2] != "~/" {
		return c.History
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, c.History[2:])
}
