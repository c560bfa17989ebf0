package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Customer represents a pet owner
type Customer struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name    string    `gorm:"size:255;not null" json:"name"`
	Email   *string   `gorm:"size:255;index" json:"email,omitempty"`
	Phone   *string   `gorm:"size:50" json:"phone,omitempty"`
	Address *string   `gorm:"type:text" json:"address,omitempty"`
	Notes   *string   `gorm:"type:text" json:"notes,omitempty"`

	// FirstVisit and LastVisit are maintained by appointment completion;
	// LastVisit drives lapsed-customer detection in retention reports.
	FirstVisit *time.Time `json:"first_visit,omitempty"`
	LastVisit  *time.Time `gorm:"index" json:"last_visit,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Pets         []Pet         `gorm:"foreignKey:CustomerID" json:"pets,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:CustomerID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// Pet represents a pet owned by a customer
type Pet struct {
	ID         uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID    `gorm:"type:uuid;not null;index" json:"customer_id"`
	Name       string       `gorm:"size:255;not null" json:"name"`
	Species    string       `gorm:"size:50;default:'dog'" json:"species"`
	Breed      *string      `gorm:"size:100" json:"breed,omitempty"`
	Size       enum.PetSize `gorm:"size:10;default:'medium'" json:"size"`
	WeightKg   *float64     `gorm:"type:numeric(5,2)" json:"weight_kg,omitempty"`
	BirthDate  *time.Time   `gorm:"type:date" json:"birth_date,omitempty"`
	Notes      *string      `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new pet
func (p *Pet) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Pet model
func (Pet) TableName() string {
	return "pets"
}
