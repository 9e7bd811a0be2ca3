package tui

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/spicylist/internal/liststate"
)

// matchesQuery reports whether a food name matches the search query. Exact
// substring matches win; otherwise each word of the name is scored with edit
// distance so a small typo ("vindalo") still finds the dish.
func matchesQuery(name, query string) bool {
	if query == "" {
		return true
	}
	name = strings.ToLower(name)
	query = strings.ToLower(query)
	if strings.Contains(name, query) {
		return true
	}
	for _, word := range strings.Fields(name) {
		dist := levenshtein.ComputeDistance(word, query)
		maxlen := len(word)
		if len(query) > maxlen {
			maxlen = len(query)
		}
		if maxlen > 0 && float64(dist)/float64(maxlen) < 0.4 {
			return true
		}
	}
	return false
}

// searchRows returns the subset of rows matching query, preserving order.
func searchRows(rows []liststate.Record, query string) []liststate.Record {
	if query == "" {
		return rows
	}
	out := make([]liststate.Record, 0, len(rows))
	for _, r := range rows {
		if matchesQuery(r.Name, query) {
			out = append(out, r)
		}
	}
	return out
}
