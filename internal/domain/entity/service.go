package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Service represents a grooming service offered by the salon
type Service struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	Category        string    `gorm:"size:100" json:"category"`
	BasePrice       float64   `gorm:"type:numeric(10,2);not null" json:"base_price"`
	BaseDurationMin int       `gorm:"not null" json:"base_duration_min"`

	// EstimatedSupplyCost approximates the shampoo/consumables cost of one
	// performance of this service; used as the COGS proxy in margin reports.
	EstimatedSupplyCost *float64 `gorm:"type:numeric(10,2)" json:"estimated_supply_cost,omitempty"`

	SizeOverrides map[enum.PetSize]SizeOverride `gorm:"serializer:json" json:"size_overrides,omitempty"`

	Active bool `gorm:"default:true;index" json:"active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// SizeOverride adjusts price and duration for a pet size class
type SizeOverride struct {
	Price       *float64 `json:"price,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
}

// PriceFor returns the price for a pet size, falling back to the base price
func (s *Service) PriceFor(size enum.PetSize) float64 {
	if o, ok := s.SizeOverrides[size]; ok && o.Price != nil {
		return *o.Price
	}
	return s.BasePrice
}

// DurationFor returns the duration for a pet size, falling back to the base duration
func (s *Service) DurationFor(size enum.PetSize) int {
	if o, ok := s.SizeOverrides[size]; ok && o.DurationMin != nil {
		return *o.DurationMin
	}
	return s.BaseDurationMin
}

// BeforeCreate generates a UUID before creating a new service
func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Service model
func (Service) TableName() string {
	return "services"
}
