package reporting

import (
	"time"

	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/pawsuite/salon-api/internal/domain/enum"
)

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }
func ptrT(v time.Time) *time.Time {
	return &v
}

func day(d int) time.Time {
	return time.Date(2025, 11, d, 10, 0, 0, 0, time.UTC)
}

// novRange covers all of November 2025
func novRange() DateRange {
	return DateRange{
		Start: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 11, 30, 23, 59, 59, 999e6, time.UTC),
	}
}

func completedAppt(d int, price, discount float64) entity.Appointment {
	return entity.Appointment{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		ServiceID:   uuid.New(),
		ScheduledAt: day(d),
		DurationMin: 60,
		Status:      enum.AppointmentStatusCompleted,
		Price:       price,
		Discount:    discount,
	}
}

func completedTxn(d int, subtotal float64) entity.Transaction {
	return entity.Transaction{
		ID:              uuid.New(),
		CheckoutAt:      day(d),
		TransactionDate: day(d),
		Subtotal:        subtotal,
		TotalCollected:  subtotal,
		Status:          enum.TransactionStatusCompleted,
		PaymentMethod:   enum.PaymentMethodCard,
	}
}
