package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"

	folio "github.com/niya-shroff/folio"
)

const (
	defaultTimeout = 5 * time.Second
	userAgent      = "folio/1.0"
)

// Client talks to the public GitHub REST API. Responses are cached so that
// repeated searches within a session do not hammer the listing endpoint.
type Client struct {
	client  *http.Client
	cache   *cache.Cache
	baseURL string
}

func New() *Client {
	httpClient := http.Client{
		Timeout: defaultTimeout,
	}

	return &Client{
		client:  &httpClient,
		cache:   cache.New(10*time.Minute, 15*time.Minute),
		baseURL: "https://api.github.com",
	}
}

// NewWithBaseURL is used by tests to point the client at a stub server.
func NewWithBaseURL(baseURL string) *Client {
	c := New()
	c.baseURL = baseURL
	return c
}

// ListRepositories returns the default listing page for the given account.
// No authentication and no pagination: the site only shows the first page,
// matching the API's default page size.
func (c *Client) ListRepositories(ctx context.Context, user string) ([]folio.Repository, error) {

	cacheKey := "repos:" + user
	if cached, found := c.cache.Get(cacheKey); found {
		return cached.([]folio.Repository), nil
	}

	url := fmt.Sprintf("%s/users/%s/repos", c.baseURL, user)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var repos []folio.Repository
	err = json.NewDecoder(resp.Body).Decode(&repos)
	if err != nil {
		return nil, fmt.Errorf("failed to decode response: %v", err)
	}

	c.cache.Set(cacheKey, repos, cache.DefaultExpiration)
	return repos, nil
}
