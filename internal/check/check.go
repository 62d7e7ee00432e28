// Package check verifies the seomark environment before any generation runs.
package check

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/johns/seomark/internal/config"
)

// Status represents the outcome of a single check.
type Status int

const (
	Pass Status = iota
	Warn
	Fail
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "pass"
	case Warn:
		return "warn"
	case Fail:
		return "FAIL"
	default:
		return "unknown"
	}
}

// Result holds the outcome of a single check.
type Result struct {
	Name   string
	Status Status
	Detail string
}

// Report aggregates all check results.
type Report struct {
	Results []Result
}

// Run executes every check against cfg.
func Run(cfg config.Config) Report {
	var r Report
	r.Results = append(r.Results, CheckConfig())
	r.Results = append(r.Results, CheckBaseURL(cfg.BaseURL))
	r.Results = append(r.Results, CheckAPIKey(cfg))
	r.Results = append(r.Results, CheckModel(cfg.Model))
	r.Results = append(r.Results, CheckStateDir(config.StateDir()))
	return r
}

// HasFailures returns true if any result has Fail status.
func (r Report) HasFailures() bool {
	for _, res := range r.Results {
		if res.Status == Fail {
			return true
		}
	}
	return false
}

// Format returns the human-readable report string.
func (r Report) Format() string {
	if len(r.Results) == 0 {
		return "seomark check\n\n  no checks ran\n"
	}

	// Find max name length for alignment.
	maxName := 0
	for _, res := range r.Results {
		if len(res.Name) > maxName {
			maxName = len(res.Name)
		}
	}

	var b strings.Builder
	b.WriteString("seomark check\n\n")

	var passed, warnings, failures int
	for _, res := range r.Results {
		switch res.Status {
		case Pass:
			passed++
		case Warn:
			warnings++
		case Fail:
			failures++
		}
		fmt.Fprintf(&b, "  %-4s  %-*s  %s\n", res.Status, maxName, res.Name, res.Detail)
	}

	fmt.Fprintf(&b, "\n%d passed, %d warning, %d failure\n", passed, warnings, failures)
	return b.String()
}

// CheckConfig reports whether a config file exists at the resolved path.
// Defaults work without one, so a missing file is only a warning.
func CheckConfig() Result {
	cfgPath := filepath.Join(config.ConfigDir(), "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		return Result{Name: "config", Status: Pass, Detail: config.CompressHome(cfgPath)}
	}
	return Result{Name: "config", Status: Warn, Detail: "config.toml not found (run `seomark init`)"}
}

// CheckBaseURL validates that the API base URL parses as an absolute URL.
func CheckBaseURL(baseURL string) Result {
	u, err := url.Parse(baseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return Result{Name: "base_url", Status: Fail, Detail: fmt.Sprintf("%q is not a valid URL", baseURL)}
	}
	return Result{Name: "base_url", Status: Pass, Detail: baseURL}
}

// CheckAPIKey verifies an API key resolves from config or environment.
func CheckAPIKey(cfg config.Config) Result {
	if cfg.APIKey != "" {
		return Result{Name: "api_key", Status: Pass, Detail: "set in config"}
	}
	if cfg.APIKeyEnv != "" && os.Getenv(cfg.APIKeyEnv) != "" {
		return Result{Name: "api_key", Status: Pass, Detail: cfg.APIKeyEnv + " set"}
	}
	return Result{Name: "api_key", Status: Fail, Detail: "no key in config and " + cfg.APIKeyEnv + " not set"}
}

// CheckModel verifies a model name is configured.
func CheckModel(model string) Result {
	if model == "" {
		return Result{Name: "model", Status: Fail, Detail: "model is empty"}
	}
	return Result{Name: "model", Status: Pass, Detail: model}
}

// CheckStateDir checks that the state directory exists or can be created.
func CheckStateDir(stateDir string) Result {
	if info, err := os.Stat(stateDir); err == nil && info.IsDir() {
		return Result{Name: "state", Status: Pass, Detail: config.CompressHome(stateDir)}
	}
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return Result{Name: "state", Status: Fail, Detail: fmt.Sprintf("cannot create %s: %v", stateDir, err)}
	}
	return Result{Name: "state", Status: Pass, Detail: config.CompressHome(stateDir) + " created"}
}
