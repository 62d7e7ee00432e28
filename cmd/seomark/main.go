package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/johns/seomark/internal/backup"
	"github.com/johns/seomark/internal/check"
	"github.com/johns/seomark/internal/config"
	"github.com/johns/seomark/internal/frontmatter"
	"github.com/johns/seomark/internal/history"
	"github.com/johns/seomark/internal/run"
	"github.com/johns/seomark/internal/watch"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("load config: %v", err)
	}

	switch os.Args[1] {
	case "gen":
		if len(os.Args) < 3 {
			fatal("usage: seomark gen <file.md> [...]")
		}
		runner := newRunner(cfg)
		if runner.History != nil {
			defer runner.History.Close()
		}
		failed := false
		for _, path := range os.Args[2:] {
			if err := runner.File(context.Background(), path); err != nil {
				failed = true
			}
		}
		if failed {
			os.Exit(1)
		}

	case "show":
		if len(os.Args) < 3 {
			fatal("usage: seomark show <file.md>")
		}
		showFile(os.Args[2])

	case "watch":
		if len(os.Args) < 3 {
			fatal("usage: seomark watch <dir>")
		}
		runner := newRunner(cfg)
		if runner.History != nil {
			defer runner.History.Close()
		}
		debounce := time.Duration(cfg.Watch.DebounceMs) * time.Millisecond
		if err := watch.Run(context.Background(), os.Args[2], debounce, os.Stderr, runner.File); err != nil {
			fatal("watch: %v", err)
		}

	case "history":
		limit := 20
		if v := flagValue(os.Args[2:], "--limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				fatal("invalid --limit value: %s", v)
			}
			limit = n
		}
		showHistory(cfg, limit)

	case "restore":
		if len(os.Args) < 4 {
			fatal("usage: seomark restore <snapshot.zst> <file.md>")
		}
		if err := backup.Restore(os.Args[2], os.Args[3]); err != nil {
			fatal("restore: %v", err)
		}
		fmt.Printf("restored: %s\n", os.Args[3])

	case "check":
		report := check.Run(cfg)
		fmt.Print(report.Format())
		if report.HasFailures() {
			os.Exit(1)
		}

	case "init":
		path, err := config.WriteDefault()
		if err != nil {
			fatal("init: %v", err)
		}
		fmt.Printf("config: %s\n", config.CompressHome(path))

	case "version":
		fmt.Printf("seomark v%s\n", version)

	case "help", "--help", "-h":
		usage()

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func newRunner(cfg config.Config) *run.Runner {
	var store *history.Store
	if cfg.History.Enabled {
		s, err := history.Open(cfg.HistoryPath())
		if err != nil {
			// History is a convenience; generation still works without it.
			fmt.Fprintf(os.Stderr, "seomark: history disabled: %v\n", err)
		} else {
			store = s
		}
	}
	return run.New(cfg, os.Stderr, store)
}

func showFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		fatal("show: %v", err)
	}
	defer f.Close()

	fields, _, err := frontmatter.Parse(f)
	if err != nil {
		fatal("show: %v", err)
	}

	fmt.Printf("description: %s\n", fields["description"])
	fmt.Printf("keywords: %s\n", fields["keywords"])
}

func showHistory(cfg config.Config, limit int) {
	store, err := history.Open(cfg.HistoryPath())
	if err != nil {
		fatal("history: %v", err)
	}
	defer store.Close()

	entries, err := store.Recent(limit)
	if err != nil {
		fatal("history: %v", err)
	}
	if len(entries) == 0 {
		fmt.Println("no generations recorded")
		return
	}
	for _, e := range entries {
		fmt.Printf("%s  %s  [%s]\n    %s\n    %s\n",
			e.CreatedAt.Format("2006-01-02 15:04"), e.Path, e.Model, e.Description, e.Keywords)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `seomark v%s — SEO frontmatter generator for markdown

Usage:
  seomark gen <file.md> [...]         Generate and patch SEO frontmatter
  seomark show <file.md>              Print current description/keywords
  seomark watch <dir>                 Regenerate on markdown changes
  seomark history [--limit N]         List recent generations
  seomark restore <snap.zst> <file>   Restore a pre-patch snapshot
  seomark check                       Verify configuration and environment
  seomark init                        Write a default config file
  seomark version                     Print version
  seomark help                        Show this help

Configuration: ~/.config/seomark/config.toml
`, version)
}

func flagValue(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "seomark: "+format+"\n", args...)
	os.Exit(1)
}
