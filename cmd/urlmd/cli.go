package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/urlmd"
	"github.com/fwojciec/urlmd/fs"
	"golang.org/x/sync/errgroup"
)

// Environment variables holding ambient forum credentials.
const (
	EnvClientID     = "REDDIT_CLIENT_ID"
	EnvClientSecret = "REDDIT_CLIENT_SECRET"
)

// Main represents the program.
type Main struct {
	// Source overrides the wired conversion stack when set.
	Source urlmd.Source

	// Getenv reads ambient configuration. Defaults to os.Getenv.
	Getenv func(string) string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Getenv: os.Getenv}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	ClientID        string        `name:"client-id" help:"Forum API client id (ambient default: REDDIT_CLIENT_ID)"`
	ClientSecret    string        `name:"client-secret" help:"Forum API client secret (ambient default: REDDIT_CLIENT_SECRET)"`
	IncludeComments bool          `short:"c" help:"Include the comment tree for forum posts"`
	ArchiveFallback bool          `short:"a" help:"Use a web archive snapshot when a page fails or is too thin"`
	Timeout         time.Duration `short:"t" default:"10s" help:"Timeout per network request"`
	Browser         bool          `short:"b" help:"Render generic pages in headless Chrome"`
	Extractor       string        `short:"e" enum:"selector,readability,trafilatura" default:"selector" help:"Generic content extractor (${enum})"`
	Sanitize        bool          `default:"true" negatable:"" help:"Sanitize extracted HTML before conversion"`
	Concurrency     int           `default:"4" help:"Concurrent conversions when several URLs are given"`
	Verbose         bool          `short:"v" help:"Log debug output to stderr"`
	OutputDir       string        `short:"o" name:"output-dir" type:"path" help:"Also write each result as a Markdown file under this directory"`
	URLs            []string      `arg:"" name:"url" help:"URLs to convert"`
}

// Options maps the flags onto per-conversion options.
func (c *CLI) Options() urlmd.Options {
	return urlmd.Options{
		ForumClientID:         c.ClientID,
		ForumClientSecret:     c.ClientSecret,
		IncludeComments:       c.IncludeComments,
		EnableArchiveFallback: c.ArchiveFallback,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("urlmd"),
		kong.Description("Convert forum threads, status posts and web pages to Markdown"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	src := m.Source
	if src == nil {
		wired, closeFn, err := m.newSource(cli, logger)
		if err != nil {
			return err
		}
		defer closeFn()
		src = wired
	}

	results, err := convertAll(ctx, src, cli.URLs, cli.Options(), cli.Concurrency)
	if err != nil {
		return err
	}

	if cli.OutputDir != "" {
		w := fs.NewWriter(cli.OutputDir)
		for i, result := range results {
			if err := w.WriteResult(ctx, cli.URLs[i], result); err != nil {
				return fmt.Errorf("failed to write %s: %w", cli.URLs[i], err)
			}
		}
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if len(results) == 1 {
		return enc.Encode(results[0])
	}
	return enc.Encode(results)
}

// convertAll converts urls concurrently and returns results in input order.
// The first failure cancels the remaining conversions.
func convertAll(ctx context.Context, src urlmd.Source, urls []string, opts urlmd.Options, concurrency int) ([]*urlmd.Result, error) {
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]*urlmd.Result, len(urls))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, u := range urls {
		g.Go(func() error {
			result, err := src.Convert(ctx, u, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", u, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
