// Package run orchestrates a single generation: read the document, call the
// LLM, interpret the completion, and patch the file's frontmatter.
package run

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/johns/seomark/internal/backup"
	"github.com/johns/seomark/internal/config"
	"github.com/johns/seomark/internal/frontmatter"
	"github.com/johns/seomark/internal/history"
	"github.com/johns/seomark/internal/interpret"
	"github.com/johns/seomark/internal/seo"
)

// Runner performs generations and writes user-facing notices to Out.
type Runner struct {
	Cfg     config.Config
	Out     io.Writer
	History *history.Store // nil when history is disabled
}

// New returns a Runner writing notices to out.
func New(cfg config.Config, out io.Writer, store *history.Store) *Runner {
	return &Runner{Cfg: cfg, Out: out, History: store}
}

// File runs one generation for the document at path. Skips (empty document,
// missing API key) and failures are reported as notices; the returned error
// is non-nil for failures so callers can set an exit code without printing
// the message twice.
func (r *Runner) File(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		r.notify("%s: %v", path, err)
		return fmt.Errorf("read document: %w", err)
	}
	text := string(data)

	if strings.TrimSpace(text) == "" {
		r.notify("%s: document is empty, nothing to generate", path)
		return nil
	}

	if r.Cfg.ResolveAPIKey() == "" {
		r.notify("no API key configured: set api_key in config.toml or export %s", r.Cfg.APIKeyEnv)
		return seo.ErrNoAPIKey
	}

	r.notify("%s: generating SEO metadata...", path)

	raw, err := seo.Generate(ctx, r.Cfg, text)
	if err != nil {
		r.notify("%s: generation failed: %v", path, err)
		return fmt.Errorf("generate: %w", err)
	}

	res, ok := interpret.Interpret(raw)
	if !ok {
		r.notify("%s: no usable metadata in the model response; check API settings and network", path)
		return fmt.Errorf("no usable metadata in response")
	}

	if r.Cfg.Backup.Enabled {
		if _, err := backup.Snapshot(path, r.Cfg.BackupDir()); err != nil {
			r.notify("%s: backup failed: %v (continuing)", path, err)
		}
	}

	patched := frontmatter.Patch(text, res.Description, res.Keywords)
	if err := os.WriteFile(path, []byte(patched), 0o644); err != nil {
		r.notify("%s: write failed: %v", path, err)
		return fmt.Errorf("write document: %w", err)
	}

	if r.History != nil {
		if err := r.History.Record(path, res.Description, res.Keywords, r.Cfg.Model); err != nil {
			r.notify("%s: history not recorded: %v", path, err)
		}
	}

	r.notify("%s: frontmatter updated", path)
	return nil
}

func (r *Runner) notify(format string, args ...any) {
	fmt.Fprintf(r.Out, format+"\n", args...)
}
