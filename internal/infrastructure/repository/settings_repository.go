package repository

import (
	"context"
	"errors"

	"github.com/pawsuite/salon-api/internal/domain/entity"
	domainRepo "github.com/pawsuite/salon-api/internal/domain/repository"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the singleton settings row
func (r *settingsRepository) Get(ctx context.Context) (*entity.SalonSettings, error) {
	var settings entity.SalonSettings
	err := r.db.WithContext(ctx).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &settings, err
}

func (r *settingsRepository) Save(ctx context.Context, settings *entity.SalonSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
