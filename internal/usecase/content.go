package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"path"

	folio "github.com/niya-shroff/folio"
)

// PhotoUpload is the validated input for a photo upload.
type PhotoUpload struct {
	Title       string
	Category    string
	Location    string
	Filename    string
	ContentType string
	Body        io.Reader
}

type ContentUsecase struct {
	repo  ContentRepository
	store MediaStore
}

func NewContentUsecase(repo ContentRepository, store MediaStore) *ContentUsecase {
	return &ContentUsecase{repo: repo, store: store}
}

func (uc *ContentUsecase) ListPhotos(ctx context.Context) ([]folio.Photo, error) {
	return uc.repo.ListPhotos(ctx)
}

// AddPhoto stores the image in the asset bucket, then inserts the row
// pointing at the stored object's public URL.
func (uc *ContentUsecase) AddPhoto(ctx context.Context, upload PhotoUpload) (folio.Photo, error) {
	if upload.Title == "" {
		return folio.Photo{}, fmt.Errorf("title is required")
	}

	key := "photos/" + randomName(upload.Filename)
	url, err := uc.store.Upload(ctx, key, upload.ContentType, upload.Body)
	if err != nil {
		return folio.Photo{}, err
	}

	return uc.repo.CreatePhoto(ctx, folio.Photo{
		URL:      url,
		Title:    upload.Title,
		Category: upload.Category,
		Location: upload.Location,
	})
}

func (uc *ContentUsecase) DeletePhoto(ctx context.Context, id uint) error {
	return uc.repo.DeletePhoto(ctx, id)
}

func (uc *ContentUsecase) ListVideos(ctx context.Context) ([]folio.Video, error) {
	return uc.repo.ListVideos(ctx)
}

func (uc *ContentUsecase) AddVideo(ctx context.Context, video folio.Video) (folio.Video, error) {
	if video.Title == "" || video.URL == "" {
		return folio.Video{}, fmt.Errorf("title and url are required")
	}
	return uc.repo.CreateVideo(ctx, video)
}

func (uc *ContentUsecase) DeleteVideo(ctx context.Context, id uint) error {
	return uc.repo.DeleteVideo(ctx, id)
}

func (uc *ContentUsecase) ListWritings(ctx context.Context) ([]folio.Writing, error) {
	return uc.repo.ListWritings(ctx)
}

func (uc *ContentUsecase) AddWriting(ctx context.Context, writing folio.Writing) (folio.Writing, error) {
	if writing.Title == "" {
		return folio.Writing{}, fmt.Errorf("title is required")
	}
	return uc.repo.CreateWriting(ctx, writing)
}

func (uc *ContentUsecase) DeleteWriting(ctx context.Context, id uint) error {
	return uc.repo.DeleteWriting(ctx, id)
}

func randomName(original string) string {
	buf := make([]byte, 8)
	rand.Read(buf)
	return hex.EncodeToString(buf) + path.Ext(original)
}
