// Package goquery implements match page extraction using the goquery HTML
// library. It locates the markup regions of a csvp.cz match result page by
// their class markers and coerces the loosely structured text inside them
// into a polodata.Match.
package goquery

import (
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mvesely/polodata"
)

// Class markers of the page regions the parser reads.
const (
	dateLeagueSelector     = "div.head.match-detail.blue.br-btm"
	dateLeagueTextSelector = "div.col-12.text-center"
	teamsSelector          = "div.whole"
	scoreSelector          = "div.col-12.col-md-12.col-lg-12.col-xl-2.score.mb-4"
)

const (
	// quarterHeaderText marks sub-headers carrying per-quarter sub-scores
	// rather than team names.
	quarterHeaderText = "čtvrtina"

	// matchFinishedText appears in the score container once the match has
	// a final score.
	matchFinishedText = "Ukončené utkání"
)

// Ensure Parser implements polodata.Parser at compile time.
var _ polodata.Parser = (*Parser)(nil)

// Parser extracts match data from match result page HTML.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseMatch extracts a Match from the given HTML document. It returns
// polodata.ErrNotPlayed for a match without a final score and an EPARSE
// error tagged with the failing sub-step otherwise. No partial record is
// ever returned.
func (p *Parser) ParseMatch(html string, matchID int) (*polodata.Match, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, polodata.WrapErrorf(polodata.EPARSE, "", err, "parsing HTML document")
	}

	league, matchDate, err := extractLeagueDate(doc)
	if err != nil {
		return nil, err
	}

	homeTeam, awayTeam, err := extractTeams(doc)
	if err != nil {
		return nil, err
	}

	homeScore, awayScore, err := extractScore(doc)
	if err != nil {
		return nil, err
	}

	return &polodata.Match{
		MatchID:   matchID,
		HomeTeam:  homeTeam,
		AwayTeam:  awayTeam,
		MatchDate: matchDate,
		League:    league,
		HomeScore: homeScore,
		AwayScore: awayScore,
		Winner:    polodata.DeriveWinner(homeScore, awayScore),
	}, nil
}

// extractLeagueDate reads the header region: the second line of its text
// holds "date, league". The date is parsed with the strict page layout.
func extractLeagueDate(doc *goquery.Document) (league string, matchDate time.Time, err error) {
	sel := doc.Find(dateLeagueSelector).First().Find(dateLeagueTextSelector).First()
	if sel.Length() == 0 {
		return "", time.Time{}, polodata.WrapErrorf(polodata.EPARSE, polodata.OpLeagueDate, nil,
			"failed to extract league and date: header region not found")
	}

	line, ok := secondLine(sel.Text())
	if !ok {
		return "", time.Time{}, polodata.WrapErrorf(polodata.EPARSE, polodata.OpLeagueDate, nil,
			"failed to extract league and date: missing second line")
	}

	datePart, leaguePart, found := strings.Cut(line, ",")
	if !found {
		return "", time.Time{}, polodata.WrapErrorf(polodata.EPARSE, polodata.OpLeagueDate, nil,
			"failed to extract league and date: no comma in %q", line)
	}

	matchDate, err = time.Parse(polodata.InputDateLayout, strings.TrimSpace(datePart))
	if err != nil {
		return "", time.Time{}, polodata.WrapErrorf(polodata.EPARSE, polodata.OpLeagueDate, err,
			"failed to extract league and date: bad date %q", strings.TrimSpace(datePart))
	}

	return strings.TrimSpace(leaguePart), matchDate, nil
}

// extractTeams reads the teams container. Sub-headers with per-quarter
// sub-scores are dropped; of the remaining headers the first is the home
// team and the second the away team. Missing team names default to "".
func extractTeams(doc *goquery.Document) (homeTeam, awayTeam string, err error) {
	container := doc.Find(teamsSelector).First()
	if container.Length() == 0 {
		return "", "", polodata.WrapErrorf(polodata.EPARSE, polodata.OpTeams, nil,
			"failed to extract teams: container not found")
	}

	var names []string
	container.Find("h3").Each(func(_ int, h *goquery.Selection) {
		text := strings.TrimSpace(h.Text())
		if strings.Contains(text, quarterHeaderText) {
			return
		}
		names = append(names, text)
	})

	if len(names) > 0 {
		homeTeam = names[0]
	}
	if len(names) > 1 {
		awayTeam = names[1]
	}
	return homeTeam, awayTeam, nil
}

// extractScore reads the score container. A container without the
// finished-match marker means the match has not been played yet; otherwise
// the second line of text holds "home : away".
func extractScore(doc *goquery.Document) (homeScore, awayScore int, err error) {
	sel := doc.Find(scoreSelector).First()
	if sel.Length() == 0 {
		return 0, 0, polodata.WrapErrorf(polodata.EPARSE, polodata.OpScore, nil,
			"failed to extract score: container not found")
	}

	text := sel.Text()
	if !strings.Contains(text, matchFinishedText) {
		return 0, 0, polodata.ErrNotPlayed
	}

	line, ok := secondLine(text)
	if !ok {
		return 0, 0, polodata.WrapErrorf(polodata.EPARSE, polodata.OpScore, nil,
			"failed to extract score: missing second line")
	}

	homePart, awayPart, found := strings.Cut(line, ":")
	if !found {
		return 0, 0, polodata.WrapErrorf(polodata.EPARSE, polodata.OpScore, nil,
			"failed to extract score: no separator in %q", line)
	}

	homeScore, err = strconv.Atoi(strings.TrimSpace(homePart))
	if err != nil {
		return 0, 0, polodata.WrapErrorf(polodata.EPARSE, polodata.OpScore, err,
			"failed to extract score: invalid home score in %q", line)
	}
	awayScore, err = strconv.Atoi(strings.TrimSpace(awayPart))
	if err != nil {
		return 0, 0, polodata.WrapErrorf(polodata.EPARSE, polodata.OpScore, err,
			"failed to extract score: invalid away score in %q", line)
	}

	return homeScore, awayScore, nil
}

// secondLine returns the trimmed second line of text, reported missing when
// the text has fewer than two lines.
func secondLine(text string) (string, bool) {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return "", false
	}
	return strings.TrimSpace(lines[1]), true
}
