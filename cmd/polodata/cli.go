package main

import (
	"context"
	"io"

	"github.com/mvesely/polodata"
	"github.com/mvesely/polodata/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	// Scraper drives the fetch→parse pipeline. Wired for the scrape command.
	Scraper *scrape.Scraper

	// Matches is the persistent match store. Nil unless a database path is
	// configured.
	Matches polodata.MatchService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape ScrapeCmd `cmd:"" help:"Scrape match result pages and emit CSV"`
	Export ExportCmd `cmd:"" help:"Export stored matches as CSV"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	From    int     `default:"1" help:"First match id to scrape"`
	To      int     `default:"2425" help:"Last match id to scrape (inclusive)"`
	Output  string  `short:"o" help:"Output CSV file path (default: stdout)"`
	DB      string  `env:"POLODATA_DB" help:"SQLite database to upsert scraped matches into"`
	RPS     float64 `name:"rps" default:"0" help:"Max requests per second (0 = unpaced)"`
	Verbose bool    `short:"v" help:"Enable verbose logging"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	DB     string `env:"POLODATA_DB" required:"" help:"SQLite database to read from"`
	Output string `short:"o" help:"Output CSV file path (default: stdout)"`
	League string `help:"Only matches in this league"`
	Winner string `help:"Only matches with this outcome (H, A, or D)"`
	Limit  int    `help:"Maximum number of matches to export"`
	Offset int    `help:"Number of matches to skip"`
}
