// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds piping configuration. InterpreterPath is the user override
// consulted before any interpreter probing; ActiveEnv carries the selected
// environment across CLI invocations.
type Config struct {
	InterpreterPath string   `yaml:"interpreter_path"`
	WorkspaceRoots  []string `yaml:"workspace_roots"`
	EnvNames        []string `yaml:"env_names"`
	ActiveEnv       string   `yaml:"active_env"`
	LogPath         string   `yaml:"log_path"`
	Debug           bool     `yaml:"debug"`
}

// DefaultConfig returns a default configuration rooted at the current
// working directory.
func DefaultConfig() *Config {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return &Config{
		WorkspaceRoots: []string{cwd},
		LogPath:        defaultLogPath(),
	}
}

// LoadConfig loads configuration from file. A missing file yields the
// defaults, not an error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "piping", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if len(cfg.WorkspaceRoots) == 0 {
		cfg.WorkspaceRoots = DefaultConfig().WorkspaceRoots
	}
	if cfg.LogPath == "" {
		cfg.LogPath = defaultLogPath()
	}

	return cfg, nil
}

// SaveConfig saves configuration to file.
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".config", "piping", "config.yaml")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func defaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "piping", "piping.log")
	}
	return filepath.Join(home, ".cache", "piping", "piping.log")
}
