package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BaseURL != "https://api.openai.com/v1" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.APIKey)
	}
	if cfg.APIKeyEnv != "OPENAI_API_KEY" {
		t.Errorf("APIKeyEnv = %q", cfg.APIKeyEnv)
	}
	if cfg.Model != "gpt-3.5-turbo" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if !cfg.History.Enabled {
		t.Error("History.Enabled should default to true")
	}
	if !cfg.Backup.Enabled {
		t.Error("Backup.Enabled should default to true")
	}
	if cfg.Watch.DebounceMs != 2000 {
		t.Errorf("Watch.DebounceMs = %d", cfg.Watch.DebounceMs)
	}
}

func TestLoad_NoConfig(t *testing.T) {
	// Point XDG to an empty dir so no config file is found
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "https://api.openai.com/v1" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
}

func TestLoad_FromFile(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir := filepath.Join(xdg, "seomark")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := `base_url = "https://llm.example.com/v1"
api_key = "sk-local"
model = "local-model"

[watch]
debounce_ms = 500
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "https://llm.example.com/v1" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.APIKey != "sk-local" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.Model != "local-model" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.Watch.DebounceMs != 500 {
		t.Errorf("Watch.DebounceMs = %d", cfg.Watch.DebounceMs)
	}
	// Fields absent from the file keep their defaults.
	if cfg.APIKeyEnv != "OPENAI_API_KEY" {
		t.Errorf("APIKeyEnv = %q", cfg.APIKeyEnv)
	}
}

func TestLoad_BadTOML(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir := filepath.Join(xdg, "seomark")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("base_url = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected parse error")
	}
}

func TestResolveAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIKeyEnv = "SEOMARK_TEST_KEY"

	// Literal key wins.
	cfg.APIKey = "literal"
	t.Setenv("SEOMARK_TEST_KEY", "from-env")
	if got := cfg.ResolveAPIKey(); got != "literal" {
		t.Errorf("ResolveAPIKey = %q, want literal", got)
	}

	// Env fallback.
	cfg.APIKey = ""
	if got := cfg.ResolveAPIKey(); got != "from-env" {
		t.Errorf("ResolveAPIKey = %q, want from-env", got)
	}

	// Nothing resolves.
	t.Setenv("SEOMARK_TEST_KEY", "")
	if got := cfg.ResolveAPIKey(); got != "" {
		t.Errorf("ResolveAPIKey = %q, want empty", got)
	}
}

func TestHistoryPath_Override(t *testing.T) {
	cfg := DefaultConfig()
	cfg.History.Path = "/tmp/custom.db"
	if got := cfg.HistoryPath(); got != "/tmp/custom.db" {
		t.Errorf("HistoryPath = %q", got)
	}

	cfg.History.Path = ""
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	if got := cfg.HistoryPath(); got != "/tmp/state/seomark/history.db" {
		t.Errorf("HistoryPath = %q", got)
	}
}
