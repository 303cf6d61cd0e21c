package search

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	folio "github.com/niya-shroff/folio"
)

var tracer = otel.Tracer("search")

type State int

const (
	Closed State = iota
	Open
)

// FetchState tracks each remote source's lifecycle within a session.
// Reopening the session re-triggers a fetch only for NotFetched and Failed
// sources; a failed fetch is retried on reopen, not continuously.
type FetchState int

const (
	NotFetched FetchState = iota
	Fetching
	Fetched
	Failed
)

// Session owns the overlay state for one search surface: open/closed,
// the current query, the remote-source snapshots, and their fetch states.
// Snapshots are written only by fetch completions and read by Assemble;
// a single mutex keeps the single-writer invariant the UI event loop gave
// the original.
type Session struct {
	id        string
	assembler *Assembler

	mu         sync.Mutex
	state      State
	query      string
	snapshots  map[string][]Record
	fetchState map[string]FetchState

	// notify, when set, receives an event each time a snapshot resolves
	// while the session is open with a non-empty query. This keeps live
	// subscribers from seeing stale results until they retype.
	notify func(folio.Event)
}

func NewSession(id string, assembler *Assembler) *Session {
	return &Session{
		id:         id,
		assembler:  assembler,
		snapshots:  make(map[string][]Record),
		fetchState: make(map[string]FetchState),
	}
}

func (s *Session) ID() string {
	return s.id
}

// SetNotify registers the snapshot-change callback. Pass nil to detach.
func (s *Session) SetNotify(fn func(folio.Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notify = fn
}

// Open transitions the session to Open and fires fetches for every remote
// source still NotFetched or Failed. Fetches are fire-and-forget: they run
// in their own goroutines and never block Query or Close. Opening an
// already-open session is a no-op beyond the fetch check.
func (s *Session) Open(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "Search.Session.Open")
	defer span.End()

	s.mu.Lock()
	s.state = Open

	var pending []Source
	for _, src := range s.assembler.Sources() {
		if !src.Remote() {
			continue
		}
		st := s.fetchState[src.Name]
		if st == NotFetched || st == Failed {
			s.fetchState[src.Name] = Fetching
			pending = append(pending, src)
		}
	}
	s.mu.Unlock()

	for _, src := range pending {
		// Detached from the request context: closing the overlay does not
		// cancel an in-flight fetch, a late result is simply kept for the
		// next open.
		go s.fetch(context.WithoutCancel(ctx), src)
	}
}

// Close transitions to Closed and clears the transient query text.
// In-flight fetches keep running; their snapshots stay usable on reopen.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Closed
	s.query = ""
}

// Query updates the query text and recomputes the result list from the
// currently available snapshots.
func (s *Session) Query(query string) []folio.SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
	return s.assembler.Assemble(query, s.snapshots)
}

// Results recomputes the result list for the current query.
func (s *Session) Results() []folio.SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assembler.Assemble(s.query, s.snapshots)
}

// Loading returns the names of remote sources with an outstanding fetch,
// for the per-source loading indicator.
func (s *Session) Loading() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	loading := []string{}
	for _, src := range s.assembler.Sources() {
		if s.fetchState[src.Name] == Fetching {
			loading = append(loading, src.Name)
		}
	}
	return loading
}

// SourceState exposes a remote source's fetch state, mainly for tests.
func (s *Session) SourceState(name string) FetchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchState[name]
}

func (s *Session) fetch(ctx context.Context, src Source) {
	ctx, span := tracer.Start(ctx, "Search.Session.Fetch")
	defer span.End()

	records, err := src.Fetch(ctx)
	if err != nil {
		span.RecordError(errors.Wrap(err, "source fetch failed"))
		slog.WarnContext(
			ctx, "Source fetch failed",
			slog.String("source", src.Name),
			slog.String("error", err.Error()),
			slog.String("module", "search"),
		)
		s.mu.Lock()
		// Snapshot is left at its prior state; the source contributes
		// fewer results rather than surfacing an error.
		s.fetchState[src.Name] = Failed
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.snapshots[src.Name] = records
	s.fetchState[src.Name] = Fetched

	notify := s.notify
	var event folio.Event
	if notify != nil && s.state == Open && s.query != "" {
		event = folio.Event{
			Type:    "results",
			Session: s.id,
			Query:   s.query,
			Results: s.assembler.Assemble(s.query, s.snapshots),
		}
	} else {
		notify = nil
	}
	s.mu.Unlock()

	if notify != nil {
		notify(event)
	}
}
