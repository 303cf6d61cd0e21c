package search

import (
	"strings"

	folio "github.com/niya-shroff/folio"
)

// Assembler produces the ordered result list for a query. It is a pure
// projection over the snapshots it is handed: identical query and snapshots
// yield an identical list, so it is safe to recompute on every keystroke.
type Assembler struct {
	sources []Source
}

func NewAssembler(sources []Source) *Assembler {
	return &Assembler{sources: sources}
}

// Sources returns the configured sources in declaration order.
func (a *Assembler) Sources() []Source {
	return a.sources
}

// Assemble visits every source in declaration order, applies the match
// predicate, and projects matches into SearchResults. Remote sources read
// from snapshots; a source with no snapshot yet contributes zero results.
// An empty or whitespace-only query yields no results.
func (a *Assembler) Assemble(query string, snapshots map[string][]Record) []folio.SearchResult {
	if strings.TrimSpace(query) == "" {
		return []folio.SearchResult{}
	}

	terms := Terms(query)
	results := []folio.SearchResult{}

	for _, src := range a.sources {
		records := src.Records
		if src.Remote() {
			records = snapshots[src.Name]
		}

		for _, rec := range records {
			if !Match(terms, rec.Fields) {
				continue
			}

			category := src.Category
			if rec.ExternalURL != "" {
				// Externally hosted long-form content opens off-site.
				category = folio.CategorySubstack
			}

			results = append(results, folio.SearchResult{
				ID:          src.Name + "-" + rec.ID,
				Title:       rec.Title,
				Description: rec.Description,
				Category:    category,
				Path:        src.Path,
				ExternalURL: rec.ExternalURL,
			})
		}
	}

	return results
}
