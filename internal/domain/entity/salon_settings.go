package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	"gorm.io/gorm"
)

// SalonSettings holds the salon-wide business configuration. A single row is
// seeded at startup and updated in place.
type SalonSettings struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	SalonName string `gorm:"size:255;default:'PawSuite'" json:"salon_name"`

	// Payment processor fee policy: fee = base * rate/100 + fixed, where base
	// is selected by FeeBasePolicy.
	ProcessorFeeRatePct float64            `gorm:"type:numeric(5,2);default:2.9" json:"processor_fee_rate_pct"`
	ProcessorFeeFixed   float64            `gorm:"type:numeric(10,2);default:0.30" json:"processor_fee_fixed"`
	FeeBasePolicy       enum.FeeBasePolicy `gorm:"size:20;default:'subtotal_tax_tip'" json:"fee_base_policy"`
	TipFeeBearer        enum.TipFeeBearer  `gorm:"size:10;default:'salon'" json:"tip_fee_bearer"`

	// Defaults applied to new staff without an explicit compensation plan.
	DefaultCompensationType  enum.CompensationType `gorm:"size:20;default:'commission'" json:"default_compensation_type"`
	DefaultCommissionRatePct float64               `gorm:"type:numeric(5,2);default:40" json:"default_commission_rate_pct"`
	DefaultHourlyRate        float64               `gorm:"type:numeric(10,2);default:18" json:"default_hourly_rate"`

	// Retention reporting knobs.
	LapsedThresholdDays   int `gorm:"default:90" json:"lapsed_threshold_days"`
	AttributionWindowDays int `gorm:"default:30" json:"attribution_window_days"`

	TaxRatePct float64 `gorm:"type:numeric(5,2);default:0" json:"tax_rate_pct"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// DefaultSalonSettings returns the settings seeded on first run
func DefaultSalonSettings() *SalonSettings {
	return &SalonSettings{
		SalonName:                "PawSuite",
		ProcessorFeeRatePct:      2.9,
		ProcessorFeeFixed:        0.30,
		FeeBasePolicy:            enum.FeeBaseSubtotalTaxTip,
		TipFeeBearer:             enum.TipFeeBearerSalon,
		DefaultCompensationType:  enum.CompensationCommission,
		DefaultCommissionRatePct: 40,
		DefaultHourlyRate:        18,
		LapsedThresholdDays:      90,
		AttributionWindowDays:    30,
	}
}

// BeforeCreate generates a UUID before creating settings
func (s *SalonSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SalonSettings model
func (SalonSettings) TableName() string {
	return "salon_settings"
}
