package service

import (
	"context"

	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	"github.com/pawsuite/salon-api/internal/domain/repository"
	"github.com/pawsuite/salon-api/pkg/apperror"
)

// SettingsService handles salon-wide configuration
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the salon settings, creating the default row on first access
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.SalonSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultSalonSettings()
		if err := s.settingsRepo.Save(ctx, settings); err != nil {
			return nil, err
		}
	}
	return settings, nil
}

// UpdateSettingsInput represents the update settings input. Nil fields are
// left unchanged.
type UpdateSettingsInput struct {
	SalonName *string

	ProcessorFeeRatePct *float64
	ProcessorFeeFixed   *float64
	FeeBasePolicy       *enum.FeeBasePolicy
	TipFeeBearer        *enum.TipFeeBearer

	DefaultCompensationType  *enum.CompensationType
	DefaultCommissionRatePct *float64
	DefaultHourlyRate        *float64

	LapsedThresholdDays   *int
	AttributionWindowDays *int
	TaxRatePct            *float64
}

// UpdateSettings applies a partial update to the salon settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.SalonSettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if input.SalonName != nil {
		settings.SalonName = *input.SalonName
	}
	if input.ProcessorFeeRatePct != nil {
		if *input.ProcessorFeeRatePct < 0 {
			return nil, apperror.NewBadRequestError("Processor fee rate cannot be negative")
		}
		settings.ProcessorFeeRatePct = *input.ProcessorFeeRatePct
	}
	if input.ProcessorFeeFixed != nil {
		if *input.ProcessorFeeFixed < 0 {
			return nil, apperror.NewBadRequestError("Processor fee cannot be negative")
		}
		settings.ProcessorFeeFixed = *input.ProcessorFeeFixed
	}
	if input.FeeBasePolicy != nil {
		settings.FeeBasePolicy = *input.FeeBasePolicy
	}
	if input.TipFeeBearer != nil {
		settings.TipFeeBearer = *input.TipFeeBearer
	}
	if input.DefaultCompensationType != nil {
		settings.DefaultCompensationType = *input.DefaultCompensationType
	}
	if input.DefaultCommissionRatePct != nil {
		settings.DefaultCommissionRatePct = *input.DefaultCommissionRatePct
	}
	if input.DefaultHourlyRate != nil {
		settings.DefaultHourlyRate = *input.DefaultHourlyRate
	}
	if input.LapsedThresholdDays != nil {
		if *input.LapsedThresholdDays < 1 {
			return nil, apperror.NewBadRequestError("Lapsed threshold must be at least one day")
		}
		settings.LapsedThresholdDays = *input.LapsedThresholdDays
	}
	if input.AttributionWindowDays != nil {
		settings.AttributionWindowDays = *input.AttributionWindowDays
	}
	if input.TaxRatePct != nil {
		settings.TaxRatePct = *input.TaxRatePct
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
