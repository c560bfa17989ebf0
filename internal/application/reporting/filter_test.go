package reporting

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func TestFilterAppointments(t *testing.T) {
	r := novRange()

	t.Run("drops appointments outside the range and with zero dates", func(t *testing.T) {
		inside := completedAppt(10, 50, 0)
		outside := completedAppt(10, 50, 0)
		outside.ScheduledAt = time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)
		zero := completedAppt(10, 50, 0)
		zero.ScheduledAt = time.Time{}

		got := FilterAppointments([]entity.Appointment{inside, outside, zero}, Filters{}, r)
		assert.Len(t, got, 1)
		assert.Equal(t, inside.ID, got[0].ID)
	})

	t.Run("empty facet arrays exclude nothing", func(t *testing.T) {
		a := completedAppt(5, 50, 0)
		b := completedAppt(6, 50, 0)
		b.Status = enum.AppointmentStatusScheduled

		got := FilterAppointments([]entity.Appointment{a, b}, Filters{}, r)
		assert.Len(t, got, 2)
	})

	t.Run("staff facet matches assigned staff and drops unassigned", func(t *testing.T) {
		staffID := uuid.New()
		assigned := completedAppt(5, 50, 0)
		assigned.StaffID = &staffID
		other := completedAppt(6, 50, 0)
		otherID := uuid.New()
		other.StaffID = &otherID
		unassigned := completedAppt(7, 50, 0)

		got := FilterAppointments(
			[]entity.Appointment{assigned, other, unassigned},
			Filters{StaffIDs: []uuid.UUID{staffID}},
			r,
		)
		assert.Len(t, got, 1)
		assert.Equal(t, assigned.ID, got[0].ID)
	})

	t.Run("non-empty status facet always drops scheduled appointments", func(t *testing.T) {
		completed := completedAppt(5, 50, 0)
		scheduled := completedAppt(6, 50, 0)
		scheduled.Status = enum.AppointmentStatusScheduled

		got := FilterAppointments(
			[]entity.Appointment{completed, scheduled},
			Filters{Statuses: []enum.AppointmentStatus{enum.AppointmentStatusCompleted}},
			r,
		)
		assert.Len(t, got, 1)
		assert.Equal(t, completed.ID, got[0].ID)
	})

	t.Run("facets combine conjunctively", func(t *testing.T) {
		match := completedAppt(5, 50, 0)
		match.PetSize = enum.PetSizeLarge
		match.Channel = enum.BookingChannelOnline
		wrongSize := completedAppt(6, 50, 0)
		wrongSize.PetSize = enum.PetSizeSmall
		wrongSize.Channel = enum.BookingChannelOnline

		got := FilterAppointments(
			[]entity.Appointment{match, wrongSize},
			Filters{
				PetSizes: []enum.PetSize{enum.PetSizeLarge},
				Channels: []enum.BookingChannel{enum.BookingChannelOnline},
			},
			r,
		)
		assert.Len(t, got, 1)
		assert.Equal(t, match.ID, got[0].ID)
	})
}

func TestFilterTransactions(t *testing.T) {
	r := novRange()

	t.Run("checkout basis is the default", func(t *testing.T) {
		tx := completedTxn(10, 100)
		tx.TransactionDate = time.Date(2025, 12, 2, 10, 0, 0, 0, time.UTC)

		got := FilterTransactions([]entity.Transaction{tx}, Filters{}, r)
		assert.Len(t, got, 1)
	})

	t.Run("transaction basis switches the governing date", func(t *testing.T) {
		tx := completedTxn(10, 100)
		tx.TransactionDate = time.Date(2025, 12, 2, 10, 0, 0, 0, time.UTC)

		got := FilterTransactions([]entity.Transaction{tx}, Filters{TimeBasis: TimeBasisTransaction}, r)
		assert.Empty(t, got)
	})

	t.Run("zero governing date is dropped silently", func(t *testing.T) {
		tx := completedTxn(10, 100)
		tx.TransactionDate = time.Time{}

		got := FilterTransactions([]entity.Transaction{tx}, Filters{TimeBasis: TimeBasisTransaction}, r)
		assert.Empty(t, got)
	})

	t.Run("payment method facet", func(t *testing.T) {
		card := completedTxn(10, 100)
		cash := completedTxn(11, 50)
		cash.PaymentMethod = enum.PaymentMethodCash

		got := FilterTransactions(
			[]entity.Transaction{card, cash},
			Filters{PaymentMethods: []enum.PaymentMethod{enum.PaymentMethodCash}},
			r,
		)
		assert.Len(t, got, 1)
		assert.Equal(t, cash.ID, got[0].ID)
	})
}
