package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mvesely/polodata"
	"github.com/mvesely/polodata/goquery"
	polohttp "github.com/mvesely/polodata/http"
	"github.com/mvesely/polodata/scrape"
	poloslog "github.com/mvesely/polodata/slog"
	"github.com/mvesely/polodata/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used by the match store, when configured.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("polodata"),
		kong.Description("Scrape Czech water-polo match results from csvp.cz."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'polodata --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire command-specific dependencies based on command
	if cmd == "scrape" {
		var fetcher polodata.Fetcher = polohttp.NewClient()
		if cli.Scrape.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			fetcher = poloslog.NewFetcher(fetcher, logger)
		}

		scraper := &scrape.Scraper{
			Fetcher: fetcher,
			Parser:  goquery.NewParser(),
		}
		if cli.Scrape.RPS > 0 {
			scraper.Limiter = scrape.NewRateLimiter(cli.Scrape.RPS)
		}
		deps.Scraper = scraper

		if cli.Scrape.DB != "" {
			if err := m.openDB(cli.Scrape.DB, deps, stderr); err != nil {
				return err
			}
			defer m.Close()
		}
	}

	if cmd == "export" {
		if err := m.openDB(cli.Export.DB, deps, stderr); err != nil {
			return err
		}
		defer m.Close()
	}

	return kongCtx.Run(deps)
}

// openDB opens the SQLite database and wires the match store.
func (m *Main) openDB(path string, deps *Dependencies, stderr io.Writer) error {
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: set POLODATA_DB or pass --db to use a different database path")
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	deps.Matches = sqlite.NewMatchService(m.DB)
	return nil
}
