package search

import (
	"strings"
)

// Terms splits a query on whitespace and discards empty terms.
func Terms(query string) []string {
	return strings.Fields(query)
}

// Match reports whether every term is a case-insensitive substring of the
// candidate's concatenated fields. Matching is conjunctive and boolean: no
// stemming, no edit distance, no scoring. Absent fields are simply skipped.
func Match(terms []string, fields []string) bool {
	if len(terms) == 0 {
		return false
	}

	var b strings.Builder
	for _, f := range fields {
		if f == "" {
			continue
		}
		b.WriteString(f)
		b.WriteByte(' ')
	}
	haystack := strings.ToLower(b.String())

	for _, term := range terms {
		if !strings.Contains(haystack, strings.ToLower(term)) {
			return false
		}
	}
	return true
}
