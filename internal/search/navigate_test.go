package search

import (
	"testing"

	folio "github.com/niya-shroff/folio"
)

func TestResolveExternal(t *testing.T) {
	action := Resolve(folio.SearchResult{
		ID:          "writing-7",
		Category:    folio.CategorySubstack,
		Path:        "/writing",
		ExternalURL: "https://example.substack.com/p/on-rivers",
	})

	if action.Kind != ActionExternal {
		t.Fatalf("expected external action, got %s", action.Kind)
	}
	if action.URL != "https://example.substack.com/p/on-rivers" {
		t.Fatalf("unexpected url: %s", action.URL)
	}
	// An external action must never change the in-app route.
	if action.Path != "" || action.Target() != "" {
		t.Fatalf("external action must not carry a route")
	}
}

func TestResolveScroll(t *testing.T) {
	action := Resolve(folio.SearchResult{
		ID:       "exp-0",
		Category: folio.CategoryExperience,
		Path:     "/experience",
	})

	if action.Kind != ActionScroll {
		t.Fatalf("expected scroll action, got %s", action.Kind)
	}
	if action.Target() != "/experience#exp-0" {
		t.Fatalf("unexpected target: %s", action.Target())
	}
	if action.SettleDelayMs != 100 {
		t.Fatalf("expected 100ms settle delay, got %d", action.SettleDelayMs)
	}
	if action.HighlightMs != 2000 {
		t.Fatalf("expected 2000ms highlight, got %d", action.HighlightMs)
	}
}

func TestResolveSubstackWithoutURLScrolls(t *testing.T) {
	action := Resolve(folio.SearchResult{
		ID:       "writing-8",
		Category: folio.CategorySubstack,
		Path:     "/writing",
	})

	if action.Kind != ActionScroll {
		t.Fatalf("expected scroll fallback without url, got %s", action.Kind)
	}
}
