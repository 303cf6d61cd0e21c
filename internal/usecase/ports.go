package usecase

import (
	"context"
	"io"

	folio "github.com/niya-shroff/folio"
)

// ContentRepository defines storage operations for media rows.
type ContentRepository interface {
	ListPhotos(ctx context.Context) ([]folio.Photo, error)
	CreatePhoto(ctx context.Context, photo folio.Photo) (folio.Photo, error)
	DeletePhoto(ctx context.Context, id uint) error

	ListVideos(ctx context.Context) ([]folio.Video, error)
	CreateVideo(ctx context.Context, video folio.Video) (folio.Video, error)
	DeleteVideo(ctx context.Context, id uint) error

	ListWritings(ctx context.Context) ([]folio.Writing, error)
	CreateWriting(ctx context.Context, writing folio.Writing) (folio.Writing, error)
	DeleteWriting(ctx context.Context, id uint) error
}

// MediaStore uploads binary assets and returns their public URL.
type MediaStore interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
}

// RepoGateway resolves the remote repository listing.
type RepoGateway interface {
	ListRepositories(ctx context.Context, user string) ([]folio.Repository, error)
}
