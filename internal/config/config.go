package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all seomark configuration.
type Config struct {
	BaseURL   string `toml:"base_url"`
	APIKey    string `toml:"api_key"`
	APIKeyEnv string `toml:"api_key_env"`
	Model     string `toml:"model"`

	History HistoryConfig `toml:"history"`
	Backup  BackupConfig  `toml:"backup"`
	Watch   WatchConfig   `toml:"watch"`
}

type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

type BackupConfig struct {
	Enabled bool `toml:"enabled"`
}

type WatchConfig struct {
	DebounceMs int `toml:"debounce_ms"`
}

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:   "https://api.openai.com/v1",
		APIKey:    "",
		APIKeyEnv: "OPENAI_API_KEY",
		Model:     "gpt-3.5-turbo",
		History: HistoryConfig{
			Enabled: true,
		},
		Backup: BackupConfig{
			Enabled: true,
		},
		Watch: WatchConfig{
			DebounceMs: 2000,
		},
	}
}

// Load reads config from the standard path, falling back to defaults.
func Load() (Config, error) {
	cfg := DefaultConfig()

	paths := configPaths()
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			if _, err := toml.DecodeFile(p, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", p, err)
			}
			break
		}
	}

	cfg.History.Path = expandHome(cfg.History.Path)

	return cfg, nil
}

// ResolveAPIKey returns the effective API key: the literal api_key value if
// set, otherwise the value of the api_key_env environment variable.
func (c Config) ResolveAPIKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	if c.APIKeyEnv != "" {
		return os.Getenv(c.APIKeyEnv)
	}
	return ""
}

// StateDir returns the seomark state directory (history db, backups).
// Uses $XDG_STATE_HOME/seomark if set, otherwise ~/.local/state/seomark.
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "seomark")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "seomark")
}

// HistoryPath returns the history database path, honoring the config override.
func (c Config) HistoryPath() string {
	if c.History.Path != "" {
		return c.History.Path
	}
	return filepath.Join(StateDir(), "history.db")
}

// BackupDir returns the directory document backups are written to.
func (c Config) BackupDir() string {
	return filepath.Join(StateDir(), "backups")
}

func configPaths() []string {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "seomark", "config.toml"))
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "seomark", "config.toml"))
	}

	return paths
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
