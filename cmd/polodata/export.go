package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mvesely/polodata"
	polocsv "github.com/mvesely/polodata/csv"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	filter := polodata.MatchFilter{
		Limit:  c.Limit,
		Offset: c.Offset,
	}
	if c.League != "" {
		filter.League = &c.League
	}
	if c.Winner != "" {
		winner := polodata.Winner(strings.ToUpper(c.Winner))
		switch winner {
		case polodata.WinnerHome, polodata.WinnerAway, polodata.WinnerDraw:
		default:
			err := polodata.Errorf(polodata.EINVALID, "--winner must be H, A, or D, got %q", c.Winner)
			fmt.Fprintf(deps.Stderr, "error: %s\n", polodata.ErrorMessage(err))
			return err
		}
		filter.Winner = &winner
	}

	matches, err := deps.Matches.FindMatches(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", polodata.ErrorMessage(err))
		return err
	}

	var out io.Writer = deps.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", err)
			return err
		}
		defer f.Close()
		out = f
	}

	if err := polocsv.NewWriter(out).WriteMatches(deps.Ctx, matches); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", polodata.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stderr, "Exported %d matches\n", len(matches))
	return nil
}
