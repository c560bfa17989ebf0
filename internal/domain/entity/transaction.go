package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Transaction represents a point-of-sale checkout: one payment covering
// services rendered and retail products sold. Appointment linkage is optional
// (walk-in retail sales have none).
type Transaction struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	AppointmentID *uuid.UUID `gorm:"type:uuid;index" json:"appointment_id,omitempty"`
	CustomerID    *uuid.UUID `gorm:"type:uuid;index" json:"customer_id,omitempty"`

	// CheckoutAt is when the sale was rung up; TransactionDate is the business
	// date it settles under. Reports pick one via the time-basis filter.
	CheckoutAt      time.Time `gorm:"not null;index" json:"checkout_at"`
	TransactionDate time.Time `gorm:"not null;index" json:"transaction_date"`

	Subtotal       float64  `gorm:"type:numeric(10,2);default:0" json:"subtotal"`
	DiscountTotal  float64  `gorm:"type:numeric(10,2);default:0" json:"discount_total"`
	TaxTotal       float64  `gorm:"type:numeric(10,2);default:0" json:"tax_total"`
	TipTotal       float64  `gorm:"type:numeric(10,2);default:0" json:"tip_total"`
	RefundTotal    float64  `gorm:"type:numeric(10,2);default:0" json:"refund_total"`
	TotalCollected float64  `gorm:"type:numeric(10,2);default:0" json:"total_collected"`
	ProcessingFee  *float64 `gorm:"type:numeric(10,2)" json:"processing_fee,omitempty"`

	PaymentMethod enum.PaymentMethod     `gorm:"size:20;default:'cash'" json:"payment_method"`
	Status        enum.TransactionStatus `gorm:"size:20;default:'pending';index" json:"status"`

	// PaymentRef holds the external processor reference (e.g. a Stripe
	// PaymentIntent id) for card payments.
	PaymentRef *string `gorm:"size:255" json:"payment_ref,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Appointment *Appointment      `gorm:"foreignKey:AppointmentID" json:"-"`
	Customer    *Customer         `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items       []TransactionItem `gorm:"foreignKey:TransactionID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// Line item kinds
const (
	ItemKindService = "service"
	ItemKindProduct = "product"
)

// TransactionItem represents a line item in a checkout transaction
type TransactionItem struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID uuid.UUID  `gorm:"type:uuid;not null;index" json:"transaction_id"`
	Kind          string     `gorm:"size:20;not null" json:"kind"`
	Name          string     `gorm:"size:255;not null" json:"name"`
	ServiceID     *uuid.UUID `gorm:"type:uuid;index" json:"service_id,omitempty"`
	StaffID       *uuid.UUID `gorm:"type:uuid;index" json:"staff_id,omitempty"`
	Quantity      int        `gorm:"not null;default:1" json:"quantity"`
	UnitPrice     float64    `gorm:"type:numeric(10,2);not null" json:"unit_price"`
	Discount      *float64   `gorm:"type:numeric(10,2)" json:"discount,omitempty"`
	UnitCost      *float64   `gorm:"type:numeric(10,2)" json:"unit_cost,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Transaction Transaction `gorm:"foreignKey:TransactionID" json:"-"`
}

// LineTotal returns quantity times unit price less the line discount
func (i *TransactionItem) LineTotal() float64 {
	total := float64(i.Quantity) * i.UnitPrice
	if i.Discount != nil {
		total -= *i.Discount
	}
	return total
}

// BeforeCreate generates a UUID before creating a new line item
func (i *TransactionItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TransactionItem model
func (TransactionItem) TableName() string {
	return "transaction_items"
}
