package search

import (
	"reflect"
	"testing"
)

func TestTerms(t *testing.T) {
	got := Terms("  engineer   jp ")
	want := []string{"engineer", "jp"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v got %v", want, got)
	}

	if len(Terms("")) != 0 {
		t.Fatalf("expected no terms for empty query")
	}
	if len(Terms("   ")) != 0 {
		t.Fatalf("expected no terms for whitespace query")
	}
}

func TestMatchConjunctiveAcrossFields(t *testing.T) {
	fields := []string{"Software Engineer", "JPMorgan Chase & Co."}

	// Terms may land in different fields; they match against the
	// concatenation, not per-field.
	if !Match([]string{"engineer", "jp"}, fields) {
		t.Fatalf("expected cross-field conjunctive match")
	}

	if Match([]string{"engineer", "apple"}, fields) {
		t.Fatalf("expected miss when one term is absent")
	}
}

func TestMatchCaseInsensitive(t *testing.T) {
	fields := []string{"Software Engineer"}

	if !Match([]string{"SOFTWARE"}, fields) {
		t.Fatalf("expected uppercase term to match")
	}
	if !Match([]string{"eNgInEeR"}, fields) {
		t.Fatalf("expected mixed-case term to match")
	}
}

func TestMatchSubstringNotWord(t *testing.T) {
	fields := []string{"Photography"}

	if !Match([]string{"graph"}, fields) {
		t.Fatalf("expected mid-word substring to match")
	}
}

func TestMatchEmptyTerms(t *testing.T) {
	if Match(nil, []string{"anything"}) {
		t.Fatalf("expected no match with zero terms")
	}
}

func TestMatchSkipsEmptyFields(t *testing.T) {
	if !Match([]string{"alpha"}, []string{"", "alpha", ""}) {
		t.Fatalf("expected match with empty fields present")
	}
	if Match([]string{"alpha"}, []string{"", ""}) {
		t.Fatalf("expected miss when all fields are empty")
	}
}
