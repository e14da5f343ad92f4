package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mvesely/polodata"
	polocsv "github.com/mvesely/polodata/csv"
	"github.com/mvesely/polodata/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	if c.From < 1 {
		err := polodata.Errorf(polodata.EINVALID, "--from must be at least 1, got %d", c.From)
		fmt.Fprintf(deps.Stderr, "error: %s\n", polodata.ErrorMessage(err))
		return err
	}
	if c.To < c.From {
		err := polodata.Errorf(polodata.EINVALID, "--to must be at least --from, got %d < %d", c.To, c.From)
		fmt.Fprintf(deps.Stderr, "error: %s\n", polodata.ErrorMessage(err))
		return err
	}

	matchIDs := make([]int, 0, c.To-c.From+1)
	for id := c.From; id <= c.To; id++ {
		matchIDs = append(matchIDs, id)
	}

	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "Scraping %d matches (ids %d-%d)\n", event.Total, c.From, c.To)
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip match %d: %v\n", event.MatchID, event.Err)
		}
	}

	result, err := deps.Scraper.Run(deps.Ctx, matchIDs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", polodata.ErrorMessage(err))
		return err
	}

	if err := c.writeCSV(deps, result.Matches); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", polodata.ErrorMessage(err))
		return err
	}

	if deps.Matches != nil {
		if err := deps.Matches.WriteMatches(deps.Ctx, result.Matches); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", polodata.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Saved %d matches to %s\n", len(result.Matches), c.DB)
	}

	fmt.Fprintf(deps.Stderr, "Scraped %d of %d matches (%d not played, %d failed)\n",
		len(result.Matches), result.Attempted, result.NotPlayed, len(result.Failures))
	if c.Output != "" {
		fmt.Fprintf(deps.Stderr, "Results saved to %s\n", c.Output)
	}

	return nil
}

// writeCSV writes the scraped matches to the output path, or stdout when no
// path is configured.
func (c *ScrapeCmd) writeCSV(deps *Dependencies, matches []*polodata.Match) error {
	var out io.Writer = deps.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return polocsv.NewWriter(out).WriteMatches(deps.Ctx, matches)
}
