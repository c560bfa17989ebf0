package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Appointment represents a scheduled grooming visit for a single pet
type Appointment struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID  `gorm:"type:uuid;not null;index" json:"customer_id"`
	PetID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"pet_id"`
	ServiceID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"service_id"`
	StaffID    *uuid.UUID `gorm:"type:uuid;index" json:"staff_id,omitempty"`

	ScheduledAt        time.Time              `gorm:"not null;index" json:"scheduled_at"`
	DurationMin        int                    `gorm:"not null" json:"duration_min"`
	ActualDurationMin  *int                   `json:"actual_duration_min,omitempty"`
	Status             enum.AppointmentStatus `gorm:"size:20;default:'scheduled';index" json:"status"`
	Price              float64                `gorm:"type:numeric(10,2);default:0" json:"price"`
	Discount           float64                `gorm:"type:numeric(10,2);default:0" json:"discount"`
	PetSize            enum.PetSize           `gorm:"size:10" json:"pet_size"`
	Channel            enum.BookingChannel    `gorm:"size:20;default:'walk-in'" json:"channel"`
	Notes              *string                `gorm:"type:text" json:"notes,omitempty"`

	// Lifecycle timestamps. BookedAt is set at creation, the rest by the
	// corresponding state transition.
	BookedAt    time.Time  `json:"booked_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	RebookedAt  *time.Time `json:"rebooked_at,omitempty"`

	Reminders []ReminderEntry `gorm:"serializer:json" json:"reminders,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
	Pet      Pet      `gorm:"foreignKey:PetID" json:"-"`
	Service  Service  `gorm:"foreignKey:ServiceID" json:"-"`
	Staff    *Staff   `gorm:"foreignKey:StaffID" json:"-"`
}

// ReminderEntry records a reminder sent for an appointment
type ReminderEntry struct {
	SentAt  time.Time `json:"sent_at"`
	Channel string    `json:"channel"` // email, sms
	Note    string    `json:"note,omitempty"`
}

// NetPrice returns the price after the appointment-level discount
func (a *Appointment) NetPrice() float64 {
	return a.Price - a.Discount
}

// EffectiveDurationMin returns the actual duration when recorded, otherwise the planned one
func (a *Appointment) EffectiveDurationMin() int {
	if a.ActualDurationMin != nil {
		return *a.ActualDurationMin
	}
	return a.DurationMin
}

// BeforeCreate generates a UUID before creating a new appointment
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Appointment model
func (Appointment) TableName() string {
	return "appointments"
}
