package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Staff represents a salon employee (groomer, bather, receptionist, manager)
type Staff struct {
	ID     uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id,omitempty"`
	Name   string     `gorm:"size:255;not null" json:"name"`
	Email  *string    `gorm:"size:255" json:"email,omitempty"`
	Phone  *string    `gorm:"size:50" json:"phone,omitempty"`
	Role   string     `gorm:"size:50;default:'groomer'" json:"role"`

	// Compensation plan. CompensationType discriminates which of the rates
	// applies; both are zero when no plan is configured.
	CompensationType  enum.CompensationType `gorm:"size:20;default:''" json:"compensation_type"`
	CommissionRatePct float64               `gorm:"type:numeric(5,2);default:0" json:"commission_rate_pct"`
	HourlyRate        float64               `gorm:"type:numeric(10,2);default:0" json:"hourly_rate"`
	EmployerBurdenPct *float64              `gorm:"type:numeric(5,2)" json:"employer_burden_pct,omitempty"`

	Active bool `gorm:"default:true;index" json:"active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User         *User         `gorm:"foreignKey:UserID" json:"-"`
	Appointments []Appointment `gorm:"foreignKey:StaffID" json:"-"`
}

// LaborCostFor returns the direct labor cost of one appointment under this
// staff member's compensation plan, burden included. Staff without a plan
// contribute zero.
func (s *Staff) LaborCostFor(netPrice float64, durationMin int) float64 {
	var labor float64
	switch s.CompensationType {
	case enum.CompensationCommission:
		labor = netPrice * s.CommissionRatePct / 100
	case enum.CompensationHourly:
		labor = float64(durationMin) / 60 * s.HourlyRate
	default:
		return 0
	}
	if s.EmployerBurdenPct != nil {
		labor *= 1 + *s.EmployerBurdenPct/100
	}
	return labor
}

// BeforeCreate generates a UUID before creating a new staff member
func (s *Staff) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Staff model
func (Staff) TableName() string {
	return "staff"
}
