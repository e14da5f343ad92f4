package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/mvesely/polodata"
)

// Compile-time interface verification.
var _ polodata.MatchService = (*MatchService)(nil)

// MatchService implements polodata.MatchService using SQLite. Matches are
// keyed by their source-site id: re-scraping a match overwrites the stored
// row instead of duplicating it.
type MatchService struct {
	db *DB
}

// NewMatchService creates a new MatchService.
func NewMatchService(db *DB) *MatchService {
	return &MatchService{db: db}
}

// WriteMatches upserts the given matches. Each match is validated before
// it is written; the first invalid match aborts the batch.
func (s *MatchService) WriteMatches(ctx context.Context, matches []*polodata.Match) error {
	for _, m := range matches {
		if err := s.upsertMatch(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func (s *MatchService) upsertMatch(ctx context.Context, m *polodata.Match) error {
	if err := m.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO matches (match_id, home_team, away_team, match_date, league, home_score, away_score, winner, scraped_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(match_id) DO UPDATE SET
			home_team = excluded.home_team,
			away_team = excluded.away_team,
			match_date = excluded.match_date,
			league = excluded.league,
			home_score = excluded.home_score,
			away_score = excluded.away_score,
			winner = excluded.winner,
			scraped_at = excluded.scraped_at
	`, m.MatchID, m.HomeTeam, m.AwayTeam, m.MatchDate.Format(time.RFC3339), m.League,
		m.HomeScore, m.AwayScore, string(m.Winner), time.Now().UTC().Format(time.RFC3339))

	return err
}

// FindMatchByID retrieves a stored match by its id.
func (s *MatchService) FindMatchByID(ctx context.Context, matchID int) (*polodata.Match, error) {
	var m polodata.Match
	var matchDate, winner string

	err := s.db.QueryRowContext(ctx, `
		SELECT match_id, home_team, away_team, match_date, league, home_score, away_score, winner
		FROM matches
		WHERE match_id = ?
	`, matchID).Scan(&m.MatchID, &m.HomeTeam, &m.AwayTeam, &matchDate, &m.League,
		&m.HomeScore, &m.AwayScore, &winner)

	if err == sql.ErrNoRows {
		return nil, polodata.Errorf(polodata.ENOTFOUND, "match %d not found", matchID)
	}
	if err != nil {
		return nil, err
	}

	m.MatchDate, err = parseRFC3339(matchDate, "match_date")
	if err != nil {
		return nil, err
	}
	m.Winner = polodata.Winner(winner)

	return &m, nil
}

// FindMatches retrieves stored matches matching the filter, ordered by
// match id.
func (s *MatchService) FindMatches(ctx context.Context, filter polodata.MatchFilter) ([]*polodata.Match, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT match_id, home_team, away_team, match_date, league, home_score, away_score, winner FROM matches WHERE 1=1")

	if filter.League != nil {
		query.WriteString(" AND league = ?")
		args = append(args, *filter.League)
	}
	if filter.Winner != nil {
		query.WriteString(" AND winner = ?")
		args = append(args, string(*filter.Winner))
	}

	query.WriteString(" ORDER BY match_id ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []*polodata.Match
	for rows.Next() {
		var m polodata.Match
		var matchDate, winner string

		if err := rows.Scan(&m.MatchID, &m.HomeTeam, &m.AwayTeam, &matchDate, &m.League,
			&m.HomeScore, &m.AwayScore, &winner); err != nil {
			return nil, err
		}

		m.MatchDate, err = parseRFC3339(matchDate, "match_date")
		if err != nil {
			return nil, err
		}
		m.Winner = polodata.Winner(winner)

		matches = append(matches, &m)
	}

	return matches, rows.Err()
}
