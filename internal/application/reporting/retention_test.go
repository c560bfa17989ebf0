package reporting

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func TestRetention(t *testing.T) {
	now := time.Date(2025, 11, 30, 12, 0, 0, 0, time.UTC)

	rebookedAfter := func(d int, gap time.Duration) entity.Appointment {
		a := completedAppt(d, 50, 0)
		a.CompletedAt = ptrT(day(d))
		a.RebookedAt = ptrT(day(d).Add(gap))
		return a
	}

	t.Run("rebook buckets are cumulative", func(t *testing.T) {
		appts := []entity.Appointment{
			rebookedAfter(1, 12*time.Hour),     // counts in 24h, 7d, 30d
			rebookedAfter(2, 3*24*time.Hour),   // counts in 7d, 30d
			rebookedAfter(3, 20*24*time.Hour),  // counts in 30d only
			completedAppt(4, 50, 0),            // never rebooked
			rebookedAfter(5, 45*24*time.Hour),  // outside every bucket
		}

		m := Retention(appts, nil, nil, now)
		assert.Equal(t, 5, m.CompletedCount)
		assert.Equal(t, 1, m.RebookedWithin24h)
		assert.Equal(t, 2, m.RebookedWithin7d)
		assert.Equal(t, 3, m.RebookedWithin30d)
		assert.InDelta(t, 20.0, m.RebookRate24hPct, 1e-9)
		assert.InDelta(t, 40.0, m.RebookRate7dPct, 1e-9)
		assert.InDelta(t, 60.0, m.RebookRate30dPct, 1e-9)
	})

	t.Run("gap measures from completion when recorded, else from the scheduled time", func(t *testing.T) {
		a := completedAppt(1, 50, 0)
		a.CompletedAt = ptrT(day(1).Add(26 * time.Hour))
		a.RebookedAt = ptrT(day(1).Add(48 * time.Hour)) // 22h after completion

		m := Retention([]entity.Appointment{a}, nil, nil, now)
		assert.Equal(t, 1, m.RebookedWithin24h)
	})

	t.Run("non-completed appointments are ignored", func(t *testing.T) {
		a := rebookedAfter(1, time.Hour)
		a.Status = enum.AppointmentStatusNoShow

		m := Retention([]entity.Appointment{a}, nil, nil, now)
		assert.Zero(t, m.CompletedCount)
		assert.Zero(t, m.RebookedWithin24h)
	})

	t.Run("avg days to next visit averages per-customer gaps", func(t *testing.T) {
		cust := uuid.New()
		first := completedAppt(1, 50, 0)
		first.CustomerID = cust
		second := completedAppt(8, 50, 0) // 7 days later
		second.CustomerID = cust
		third := completedAppt(22, 50, 0) // 14 days later
		third.CustomerID = cust
		loner := completedAppt(3, 50, 0) // single visit, no gap

		m := Retention([]entity.Appointment{third, first, loner, second}, nil, nil, now)
		assert.InDelta(t, 10.5, m.AvgDaysToNextVisit, 1e-9) // (7 + 14) / 2
	})
}

func TestRetentionLapsed(t *testing.T) {
	now := time.Date(2025, 11, 30, 12, 0, 0, 0, time.UTC)

	customer := func(daysAgo int) entity.Customer {
		return entity.Customer{
			ID:        uuid.New(),
			Name:      "c",
			LastVisit: ptrT(now.AddDate(0, 0, -daysAgo)),
		}
	}

	t.Run("default threshold is 90 days", func(t *testing.T) {
		lapsed := customer(95)
		active := customer(89)
		noVisits := entity.Customer{ID: uuid.New(), Name: "n"}

		m := Retention(nil, []entity.Customer{lapsed, active, noVisits}, nil, now)
		assert.Equal(t, 1, m.LapsedCount)
		assert.Equal(t, []uuid.UUID{lapsed.ID}, m.LapsedCustomerIDs)
	})

	t.Run("threshold comes from settings when configured", func(t *testing.T) {
		settings := &entity.SalonSettings{LapsedThresholdDays: 30}
		borderline := customer(45)

		m := Retention(nil, []entity.Customer{borderline}, settings, now)
		assert.Equal(t, 1, m.LapsedCount)
	})

	t.Run("zero threshold in settings falls back to the default", func(t *testing.T) {
		settings := &entity.SalonSettings{}
		m := Retention(nil, []entity.Customer{customer(45)}, settings, now)
		assert.Zero(t, m.LapsedCount)
	})
}
