package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

const listingBody = `[
	{"id": 1, "name": "folio", "description": "personal site", "language": "Go", "html_url": "https://github.com/niya-shroff/folio"},
	{"id": 2, "name": "dotfiles", "description": "", "language": "Shell", "html_url": "https://github.com/niya-shroff/dotfiles"}
]`

func TestListRepositories(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/users/niya-shroff/repos" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(listingBody))
	}))
	defer server.Close()

	c := NewWithBaseURL(server.URL)

	repos, err := c.ListRepositories(context.Background(), "niya-shroff")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(repos) != 2 {
		t.Fatalf("expected 2 repos, got %d", len(repos))
	}
	if repos[0].Name != "folio" || repos[0].Language != "Go" {
		t.Fatalf("unexpected repo: %+v", repos[0])
	}
	if repos[0].HTMLURL != "https://github.com/niya-shroff/folio" {
		t.Fatalf("unexpected html url: %s", repos[0].HTMLURL)
	}

	// Second call is served from cache.
	_, err = c.ListRepositories(context.Background(), "niya-shroff")
	if err != nil {
		t.Fatalf("cached list failed: %v", err)
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("expected 1 upstream hit, got %d", got)
	}
}

func TestListRepositoriesUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	c := NewWithBaseURL(server.URL)

	_, err := c.ListRepositories(context.Background(), "niya-shroff")
	if err == nil {
		t.Fatalf("expected error on non-200 response")
	}
}
