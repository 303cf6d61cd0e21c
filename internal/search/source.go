package search

import (
	"context"

	folio "github.com/niya-shroff/folio"
)

// Record is a native content record projected into a matchable form.
// ID is the record's native identifier; the assembler prefixes it with the
// source name to build the result ID.
type Record struct {
	ID          string
	Title       string
	Description string
	ExternalURL string
	// Fields are the texts the match predicate runs against. Which fields
	// participate is a per-source decision made at projection time.
	Fields []string
}

// Source is one configured content origin. Sources are visited in
// declaration order and never reordered, so result ordering is stable.
type Source struct {
	Name     string
	Category folio.Category
	Path     string

	// Fetch is set for remote-backed sources and nil for static ones.
	// A remote source contributes the session snapshot instead of Records.
	Fetch func(ctx context.Context) ([]Record, error)

	// Records is the immutable snapshot of a static source.
	Records []Record
}

// Remote reports whether the source needs a fetch before it contributes.
func (s Source) Remote() bool {
	return s.Fetch != nil
}

// Static builds a source over an in-memory collection.
func Static(name string, category folio.Category, path string, records []Record) Source {
	return Source{Name: name, Category: category, Path: path, Records: records}
}

// Remote builds a source whose snapshot is fetched on session open.
func RemoteSource(name string, category folio.Category, path string, fetch func(ctx context.Context) ([]Record, error)) Source {
	return Source{Name: name, Category: category, Path: path, Fetch: fetch}
}
