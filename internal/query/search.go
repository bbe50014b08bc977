// Package query filters, searches, sorts and groups the master record set.
// It never mutates source records; every operation returns a fresh view.
package query

import "strings"

// ParseKeywords splits a search query into include and exclude keywords.
//
// If the query contains a comma, tokens split on commas (preserving
// multi-word phrases); otherwise each whitespace-separated word is its own
// token. A "-" prefix (on tokens longer than the prefix itself) marks an
// exclude keyword. All keywords are case-folded.
//
//	"comp, phys, -philo" -> include=[comp phys], exclude=[philo]
//	"comp phys -philo"   -> include=[comp phys], exclude=[philo]
//	"computer science"   -> include=[computer science] when comma-split
func ParseKeywords(queryStr string) (includes, excludes []string) {
	queryStr = strings.TrimSpace(queryStr)
	if queryStr == "" {
		return nil, nil
	}

	var tokens []string
	if strings.Contains(queryStr, ",") {
		tokens = strings.Split(queryStr, ",")
	} else {
		tokens = strings.Fields(queryStr)
	}

	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if strings.HasPrefix(tok, "-") && len(tok) > 1 {
			excludes = append(excludes, strings.ToLower(strings.TrimSpace(tok[1:])))
		} else {
			includes = append(includes, strings.ToLower(tok))
		}
	}
	return includes, excludes
}

// MatchKeywords reports whether text satisfies the keyword sets: it must
// contain every include keyword as a substring and none of the excludes.
// An empty query matches everything.
func MatchKeywords(text string, includes, excludes []string) bool {
	if len(includes) == 0 && len(excludes) == 0 {
		return true
	}
	lower := strings.ToLower(text)
	for _, kw := range includes {
		if !strings.Contains(lower, kw) {
			return false
		}
	}
	for _, kw := range excludes {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	return true
}
