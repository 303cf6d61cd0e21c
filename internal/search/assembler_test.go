package search

import (
	"reflect"
	"testing"

	folio "github.com/niya-shroff/folio"
)

func fixtureSources() []Source {
	return []Source{
		Static("exp", folio.CategoryExperience, "/experience", []Record{
			{ID: "0", Title: "Software Engineer", Description: "Acme", Fields: []string{"Software Engineer", "Acme"}},
			{ID: "1", Title: "Engineer in Test", Description: "Initech", Fields: []string{"Engineer in Test", "Initech"}},
			{ID: "2", Title: "Barista", Description: "Cafe", Fields: []string{"Barista", "Cafe"}},
		}),
		RemoteSource("proj", folio.CategoryProjects, "/technical", nil),
		RemoteSource("writing", folio.CategoryWriting, "/writing", nil),
	}
}

func TestAssembleEmptyQuery(t *testing.T) {
	a := NewAssembler(fixtureSources())

	if got := a.Assemble("", nil); len(got) != 0 {
		t.Fatalf("expected no results for empty query, got %d", len(got))
	}
	if got := a.Assemble("   ", nil); len(got) != 0 {
		t.Fatalf("expected no results for whitespace query, got %d", len(got))
	}
}

func TestAssembleConjunctiveFiltering(t *testing.T) {
	a := NewAssembler(fixtureSources())

	// "software acme" needs both terms, only the first record has them.
	results := a.Assemble("software acme", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].ID != "exp-0" {
		t.Fatalf("expected exp-0, got %s", results[0].ID)
	}

	// "engineer" hits two records, in record order.
	results = a.Assemble("engineer", nil)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].ID != "exp-0" || results[1].ID != "exp-1" {
		t.Fatalf("unexpected order: %s, %s", results[0].ID, results[1].ID)
	}

	if got := a.Assemble("xyz123", nil); len(got) != 0 {
		t.Fatalf("expected no results, got %d", len(got))
	}
}

func TestAssembleSourceOrder(t *testing.T) {
	sources := []Source{
		Static("b", folio.CategoryPage, "/", []Record{
			{ID: "0", Title: "shared", Fields: []string{"shared"}},
		}),
		Static("a", folio.CategoryExperience, "/experience", []Record{
			{ID: "0", Title: "shared", Fields: []string{"shared"}},
		}),
	}
	a := NewAssembler(sources)

	results := a.Assemble("shared", nil)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	// Declaration order, never alphabetical or scored.
	if results[0].ID != "b-0" || results[1].ID != "a-0" {
		t.Fatalf("unexpected order: %s, %s", results[0].ID, results[1].ID)
	}
}

func TestAssembleDeterministic(t *testing.T) {
	a := NewAssembler(fixtureSources())

	first := a.Assemble("engineer", nil)
	second := a.Assemble("engineer", nil)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results for identical inputs")
	}
}

func TestAssembleRemoteSnapshot(t *testing.T) {
	a := NewAssembler(fixtureSources())

	// No snapshot yet: the remote source contributes nothing, the static
	// sources are unaffected.
	results := a.Assemble("widget", nil)
	if len(results) != 0 {
		t.Fatalf("expected no results before fetch, got %d", len(results))
	}

	snapshots := map[string][]Record{
		"proj": {
			{ID: "42", Title: "widget-factory", Description: "Go", Fields: []string{"widget-factory", "Go"}},
		},
	}
	results = a.Assemble("widget", snapshots)
	if len(results) != 1 {
		t.Fatalf("expected 1 result after fetch, got %d", len(results))
	}
	if results[0].ID != "proj-42" {
		t.Fatalf("expected proj-42, got %s", results[0].ID)
	}
	if results[0].Category != folio.CategoryProjects {
		t.Fatalf("expected Projects category, got %s", results[0].Category)
	}
	if results[0].Path != "/technical" {
		t.Fatalf("expected /technical path, got %s", results[0].Path)
	}
}

func TestAssembleExternalOverridesCategory(t *testing.T) {
	a := NewAssembler(fixtureSources())

	snapshots := map[string][]Record{
		"writing": {
			{ID: "7", Title: "On Rivers", ExternalURL: "https://example.substack.com/p/on-rivers", Fields: []string{"On Rivers"}},
			{ID: "8", Title: "On Stones", Fields: []string{"On Stones"}},
		},
	}

	results := a.Assemble("on", snapshots)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Category != folio.CategorySubstack {
		t.Fatalf("expected Substack category for external piece, got %s", results[0].Category)
	}
	if results[1].Category != folio.CategoryWriting {
		t.Fatalf("expected Writing category for local piece, got %s", results[1].Category)
	}
}
