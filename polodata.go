// Package polodata scrapes Czech water-polo match results from csvp.cz.
// It fetches match result pages by numeric id, extracts structured match
// data (teams, date, league, score, winner) from the page markup, and
// aggregates the successfully parsed matches into a fixed-schema tabular
// dataset.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, sqlite/).
package polodata
