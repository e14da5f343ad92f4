package mock

import "github.com/mvesely/polodata"

var _ polodata.Parser = (*Parser)(nil)

// Parser is a mock implementation of polodata.Parser.
type Parser struct {
	ParseMatchFn func(html string, matchID int) (*polodata.Match, error)
}

func (p *Parser) ParseMatch(html string, matchID int) (*polodata.Match, error) {
	return p.ParseMatchFn(html, matchID)
}
