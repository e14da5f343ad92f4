package polodata

// Parser extracts structured match data from raw match page HTML.
type Parser interface {
	// ParseMatch extracts a Match from the HTML document for matchID.
	// Extraction is all-or-nothing: any structural failure returns an
	// EPARSE error tagged with the sub-step op (OpLeagueDate, OpTeams,
	// OpScore) and no partial record. A page for a match without a final
	// score returns ErrNotPlayed.
	ParseMatch(html string, matchID int) (*Match, error)
}
