package repository

import (
	"context"

	"github.com/pawsuite/salon-api/internal/domain/entity"
)

// SettingsRepository defines the interface for the salon settings singleton
type SettingsRepository interface {
	// Get returns the settings row, or nil when none has been created yet
	Get(ctx context.Context) (*entity.SalonSettings, error)
	Save(ctx context.Context, settings *entity.SalonSettings) error
}
