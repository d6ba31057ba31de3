// Package search provides text normalization for the public justice index.
// The index matches petitions by case-insensitive substring against title
// or category; normalization happens here, in one place, so the SQL layer
// only ever sees folded queries.
package search

import (
	"strings"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// NormalizeQuery prepares a raw user query for substring matching: it trims
// surrounding whitespace, collapses inner whitespace runs to single spaces,
// and applies Unicode case folding so that matching is case-insensitive
// beyond ASCII.
//
// An empty or whitespace-only query normalizes to "", which callers treat
// as "match everything".
func NormalizeQuery(q string) string {
	q = strings.TrimSpace(q)
	if q == "" {
		return ""
	}
	q = strings.Join(strings.Fields(q), " ")
	return folder.String(q)
}
