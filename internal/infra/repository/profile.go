package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/niya-shroff/folio/internal/infra/database/models"
)

// ProfileRepository looks up admin credentials.
type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByUsername(ctx context.Context, username string) (models.Profile, error) {
	var row models.Profile
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&row).Error
	if err != nil {
		return models.Profile{}, translateNotFound(err, "profile")
	}
	return row, nil
}
