package reporting

import (
	"testing"

	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func TestAppointmentStats(t *testing.T) {
	withStatus := func(s enum.AppointmentStatus) entity.Appointment {
		a := completedAppt(10, 50, 0)
		a.Status = s
		return a
	}

	t.Run("empty input", func(t *testing.T) {
		m := AppointmentStats(nil)
		assert.Zero(t, m.Total)
		assert.Zero(t, m.CompletionRatePct)
		assert.Zero(t, m.CancellationRatePct)
	})

	t.Run("cancellations leave the show-rate denominators", func(t *testing.T) {
		appts := []entity.Appointment{
			withStatus(enum.AppointmentStatusCompleted),
			withStatus(enum.AppointmentStatusCompleted),
			withStatus(enum.AppointmentStatusCompleted),
			withStatus(enum.AppointmentStatusNoShow),
			withStatus(enum.AppointmentStatusCancelled),
		}

		m := AppointmentStats(appts)
		assert.Equal(t, 5, m.Total)
		assert.Equal(t, 3, m.Completed)
		assert.Equal(t, 1, m.NoShows)
		assert.Equal(t, 1, m.Cancelled)

		// Completion and no-show divide by total minus cancelled (4);
		// cancellation divides by the full total (5).
		assert.InDelta(t, 75.0, m.CompletionRatePct, 1e-9)
		assert.InDelta(t, 25.0, m.NoShowRatePct, 1e-9)
		assert.InDelta(t, 20.0, m.CancellationRatePct, 1e-9)
	})

	t.Run("all cancelled guards the held denominator", func(t *testing.T) {
		m := AppointmentStats([]entity.Appointment{withStatus(enum.AppointmentStatusCancelled)})
		assert.Zero(t, m.CompletionRatePct)
		assert.Zero(t, m.NoShowRatePct)
		assert.InDelta(t, 100.0, m.CancellationRatePct, 1e-9)
	})

	t.Run("duration variance averages only appointments reporting both durations", func(t *testing.T) {
		over := withStatus(enum.AppointmentStatusCompleted)
		over.DurationMin = 60
		over.ActualDurationMin = ptrI(75)

		under := withStatus(enum.AppointmentStatusCompleted)
		under.DurationMin = 60
		under.ActualDurationMin = ptrI(55)

		unreported := withStatus(enum.AppointmentStatusCompleted)
		unreported.ActualDurationMin = nil

		m := AppointmentStats([]entity.Appointment{over, under, unreported})
		assert.InDelta(t, 5.0, m.AvgDurationVarianceMin, 1e-9) // (15 - 5) / 2
	})
}
