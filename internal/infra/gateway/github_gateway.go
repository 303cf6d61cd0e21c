package gateway

import (
	"context"

	folio "github.com/niya-shroff/folio"
	"github.com/niya-shroff/folio/client"
)

// GitHubGateway fronts the repository listing for the search catalog and
// the projects endpoint. The underlying client caches responses, so the
// site never issues more than one listing request per cache window even
// when several search sessions open at once.
type GitHubGateway struct {
	client *client.Client
}

func NewGitHubGateway(cl *client.Client) *GitHubGateway {
	return &GitHubGateway{client: cl}
}

func (g *GitHubGateway) ListRepositories(ctx context.Context, user string) ([]folio.Repository, error) {
	return g.client.ListRepositories(ctx, user)
}
