package usecase

import (
	"context"

	folio "github.com/niya-shroff/folio"
)

type ProjectUsecase struct {
	gateway RepoGateway
	user    string
}

func NewProjectUsecase(gateway RepoGateway, user string) *ProjectUsecase {
	return &ProjectUsecase{gateway: gateway, user: user}
}

func (uc *ProjectUsecase) List(ctx context.Context) ([]folio.Repository, error) {
	return uc.gateway.ListRepositories(ctx, uc.user)
}
