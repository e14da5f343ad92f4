// Package csv writes match datasets as CSV with a fixed column schema.
package csv

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/mvesely/polodata"
)

// Header is the fixed output schema, in column order. It is written even
// for an empty dataset.
var Header = []string{
	"match_id",
	"home_team",
	"away_team",
	"match_date",
	"league",
	"home_score",
	"away_score",
	"winner",
}

// Ensure Writer implements polodata.MatchWriter at compile time.
var _ polodata.MatchWriter = (*Writer)(nil)

// Writer writes matches as CSV rows to an io.Writer.
type Writer struct {
	w io.Writer
}

// NewWriter creates a new Writer writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteMatches writes the header followed by one row per match, in input
// order. Match dates are formatted in the canonical output layout.
func (w *Writer) WriteMatches(ctx context.Context, matches []*polodata.Match) error {
	cw := csv.NewWriter(w.w)

	if err := cw.Write(Header); err != nil {
		return err
	}

	for _, m := range matches {
		row := []string{
			strconv.Itoa(m.MatchID),
			m.HomeTeam,
			m.AwayTeam,
			m.FormattedDate(),
			m.League,
			strconv.Itoa(m.HomeScore),
			strconv.Itoa(m.AwayScore),
			string(m.Winner),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
