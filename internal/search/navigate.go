package search

import (
	"time"

	folio "github.com/niya-shroff/folio"
)

const (
	// HighlightDuration is how long the target keeps its highlight ring.
	HighlightDuration = 2 * time.Second
	// SettleDelay gives the target page a beat to render before the
	// scroll-to-target attempt runs.
	SettleDelay = 100 * time.Millisecond
)

type ActionKind string

const (
	// ActionExternal opens the result's URL in a new browsing context.
	ActionExternal ActionKind = "external"
	// ActionScroll navigates in-app to path#fragment, then scrolls the
	// element with that identifier into the centered viewport.
	ActionScroll ActionKind = "scroll"
)

// NavigationAction tells the UI what to do with a selected result. The
// scroll-and-highlight step is best effort: if the target element is not
// present when the settle delay elapses, the UI skips it silently. Both
// kinds close the search overlay.
type NavigationAction struct {
	Kind ActionKind `json:"kind"`

	URL string `json:"url,omitempty"`

	Path          string `json:"path,omitempty"`
	Fragment      string `json:"fragment,omitempty"`
	SettleDelayMs int    `json:"settleDelayMs,omitempty"`
	HighlightMs   int    `json:"highlightMs,omitempty"`
}

// Target returns the full in-app navigation target, path#fragment.
func (a NavigationAction) Target() string {
	if a.Kind != ActionScroll {
		return ""
	}
	return a.Path + "#" + a.Fragment
}

// Resolve maps a selected result to its navigation action. Externally
// hosted content (Substack category with a URL) opens off-site and must not
// change the in-app route; everything else deep-links in-app.
func Resolve(result folio.SearchResult) NavigationAction {
	if result.Category == folio.CategorySubstack && result.ExternalURL != "" {
		return NavigationAction{
			Kind: ActionExternal,
			URL:  result.ExternalURL,
		}
	}

	return NavigationAction{
		Kind:          ActionScroll,
		Path:          result.Path,
		Fragment:      result.ID,
		SettleDelayMs: int(SettleDelay / time.Millisecond),
		HighlightMs:   int(HighlightDuration / time.Millisecond),
	}
}
