package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	folio "github.com/niya-shroff/folio"
	"github.com/niya-shroff/folio/internal/domain"
	"github.com/niya-shroff/folio/internal/infra/database/models"
)

// ContentRepository persists the database-backed media collections.
type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

func (r *ContentRepository) ListPhotos(ctx context.Context) ([]folio.Photo, error) {
	var rows []models.Photo
	err := r.db.WithContext(ctx).Order("id asc").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	photos := make([]folio.Photo, len(rows))
	for i, row := range rows {
		photos[i] = folio.Photo{
			ID:       row.ID,
			URL:      row.URL,
			Title:    row.Title,
			Category: row.Category,
			Location: row.Location,
		}
	}
	return photos, nil
}

func (r *ContentRepository) CreatePhoto(ctx context.Context, photo folio.Photo) (folio.Photo, error) {
	row := models.Photo{
		URL:      photo.URL,
		Title:    photo.Title,
		Category: photo.Category,
		Location: photo.Location,
	}
	err := r.db.WithContext(ctx).Create(&row).Error
	if err != nil {
		return folio.Photo{}, err
	}
	photo.ID = row.ID
	return photo, nil
}

func (r *ContentRepository) DeletePhoto(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Photo{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "photo"}
	}
	return nil
}

func (r *ContentRepository) ListVideos(ctx context.Context) ([]folio.Video, error) {
	var rows []models.Video
	err := r.db.WithContext(ctx).Order("id asc").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	videos := make([]folio.Video, len(rows))
	for i, row := range rows {
		videos[i] = folio.Video{
			ID:        row.ID,
			Title:     row.Title,
			URL:       row.URL,
			Thumbnail: row.Thumbnail,
			Platform:  row.Platform,
			Category:  row.Category,
		}
	}
	return videos, nil
}

func (r *ContentRepository) CreateVideo(ctx context.Context, video folio.Video) (folio.Video, error) {
	row := models.Video{
		Title:     video.Title,
		URL:       video.URL,
		Thumbnail: video.Thumbnail,
		Platform:  video.Platform,
		Category:  video.Category,
	}
	err := r.db.WithContext(ctx).Create(&row).Error
	if err != nil {
		return folio.Video{}, err
	}
	video.ID = row.ID
	return video, nil
}

func (r *ContentRepository) DeleteVideo(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Video{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "video"}
	}
	return nil
}

func (r *ContentRepository) ListWritings(ctx context.Context) ([]folio.Writing, error) {
	var rows []models.Writing
	err := r.db.WithContext(ctx).Order("published_at desc").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	writings := make([]folio.Writing, len(rows))
	for i, row := range rows {
		writings[i] = folio.Writing{
			ID:          row.ID,
			Title:       row.Title,
			Content:     row.Content,
			Category:    row.Category,
			ExternalURL: row.ExternalURL,
			PublishedAt: row.PublishedAt,
		}
	}
	return writings, nil
}

func (r *ContentRepository) CreateWriting(ctx context.Context, writing folio.Writing) (folio.Writing, error) {
	row := models.Writing{
		Title:       writing.Title,
		Content:     writing.Content,
		Category:    writing.Category,
		ExternalURL: writing.ExternalURL,
		PublishedAt: writing.PublishedAt,
	}
	err := r.db.WithContext(ctx).Create(&row).Error
	if err != nil {
		return folio.Writing{}, err
	}
	writing.ID = row.ID
	return writing, nil
}

func (r *ContentRepository) DeleteWriting(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Writing{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "writing"}
	}
	return nil
}

func translateNotFound(err error, resource string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFoundError{Resource: resource}
	}
	return err
}
