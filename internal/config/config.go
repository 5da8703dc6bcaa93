// Package config handles configuration loading and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultFile     = "tasks.json"
	DefaultTheme    = "classic"
	DefaultAssignee = "Unassigned"
)

const (
	userFileName    = ".tasks.toml"
	projectFileName = "tasks.toml"
	envFile         = "TASKS_FILE"
)

// Config holds the runtime settings for the CLI.
type Config struct {
	// File is the path of the JSON task file.
	File string `toml:"file"`
	// Theme selects the ui theme ("classic" or "mono").
	Theme string `toml:"theme"`
	// Assignee is the default assignee for new tasks.
	Assignee string `toml:"assignee"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		File:     DefaultFile,
		Theme:    DefaultTheme,
		Assignee: DefaultAssignee,
	}
}

// Load resolves the configuration in order: defaults, then ~/.tasks.toml,
// then ./tasks.toml, then the TASKS_FILE environment variable. Missing
// config files are fine; a file that exists but does not parse is an error.
func Load() (*Config, error) {
	cfg := Default()

	if home, err := os.UserHomeDir(); err == nil {
		if err := mergeFile(cfg, filepath.Join(home, userFileName)); err != nil {
			return nil, err
		}
	}
	if err := mergeFile(cfg, projectFileName); err != nil {
		return nil, err
	}

	if f := strings.TrimSpace(os.Getenv(envFile)); f != "" {
		cfg.File = f
	}
	return cfg, nil
}

func mergeFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}
