package polodata

import (
	"context"
	"time"
)

// Date layouts used by match pages and the tabular output.
const (
	// InputDateLayout is the loose format rendered on match pages,
	// e.g. "21. 12. 2025 - 11:00".
	InputDateLayout = "2. 1. 2006 - 15:04"

	// OutputDateLayout is the canonical format used in tabular output,
	// e.g. "21.12.2025 11:00:00".
	OutputDateLayout = "02.01.2006 15:04:05"
)

// Winner identifies the outcome of a match.
type Winner string

// Winner values, derived deterministically from the final score.
const (
	WinnerHome Winner = "H"
	WinnerAway Winner = "A"
	WinnerDraw Winner = "D"
)

// DeriveWinner returns the outcome for a final score. It is total over
// non-negative score pairs; an equal score (including 0:0) is a draw.
func DeriveWinner(homeScore, awayScore int) Winner {
	switch {
	case homeScore > awayScore:
		return WinnerHome
	case awayScore > homeScore:
		return WinnerAway
	default:
		return WinnerDraw
	}
}

// Match represents one finished water-polo match as scraped from its result
// page. A Match is only ever constructed with all fields valid at once and
// is never mutated afterwards.
type Match struct {
	MatchID   int       `json:"matchId"`
	HomeTeam  string    `json:"homeTeam"`
	AwayTeam  string    `json:"awayTeam"`
	MatchDate time.Time `json:"matchDate"`
	League    string    `json:"league"`
	HomeScore int       `json:"homeScore"`
	AwayScore int       `json:"awayScore"`
	Winner    Winner    `json:"winner"`
}

// FormattedDate returns the match date in the canonical output layout.
func (m *Match) FormattedDate() string {
	return m.MatchDate.Format(OutputDateLayout)
}

// Validate returns an error if the match contains invalid fields.
func (m *Match) Validate() error {
	if m.MatchID < 1 {
		return Errorf(EINVALID, "match id must be positive, got %d", m.MatchID)
	}
	if m.MatchDate.IsZero() {
		return Errorf(EINVALID, "match date required")
	}
	if m.HomeScore < 0 || m.AwayScore < 0 {
		return Errorf(EINVALID, "scores must be non-negative, got %d:%d", m.HomeScore, m.AwayScore)
	}
	if m.Winner != DeriveWinner(m.HomeScore, m.AwayScore) {
		return Errorf(EINVALID, "winner %q inconsistent with score %d:%d", m.Winner, m.HomeScore, m.AwayScore)
	}
	return nil
}

// MatchWriter writes a batch of matches to a sink (CSV file, database).
type MatchWriter interface {
	WriteMatches(ctx context.Context, matches []*Match) error
}

// MatchService represents a service for managing stored matches.
type MatchService interface {
	MatchWriter

	// FindMatchByID retrieves a stored match by its id.
	// Returns ENOTFOUND if the match does not exist.
	FindMatchByID(ctx context.Context, matchID int) (*Match, error)

	// FindMatches retrieves stored matches matching the filter,
	// ordered by match id.
	FindMatches(ctx context.Context, filter MatchFilter) ([]*Match, error)
}

// MatchFilter represents a filter for FindMatches.
type MatchFilter struct {
	League *string
	Winner *Winner

	Offset int
	Limit  int
}
