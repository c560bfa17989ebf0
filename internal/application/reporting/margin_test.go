package reporting

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func TestMargins(t *testing.T) {
	svcID := uuid.New()
	commissionID := uuid.New()
	hourlyID := uuid.New()
	noPlanID := uuid.New()

	services := []entity.Service{
		{ID: svcID, Name: "Full Groom", BasePrice: 80, EstimatedSupplyCost: ptrF(6.50)},
	}
	staff := []entity.Staff{
		{
			ID:                commissionID,
			Name:              "Ana",
			CompensationType:  enum.CompensationCommission,
			CommissionRatePct: 40,
			EmployerBurdenPct: ptrF(10),
		},
		{ID: hourlyID, Name: "Ben", CompensationType: enum.CompensationHourly, HourlyRate: 24},
		{ID: noPlanID, Name: "Cam"},
	}

	appt := func(staffID uuid.UUID, price float64, durationMin int) entity.Appointment {
		a := completedAppt(10, price, 0)
		a.ServiceID = svcID
		a.StaffID = &staffID
		a.DurationMin = durationMin
		return a
	}

	t.Run("commission labor includes employer burden", func(t *testing.T) {
		appts := []entity.Appointment{appt(commissionID, 80, 60)}
		rev := RevenueMetrics{NetSales: 80, ProcessingFees: 2.62}

		m := Margins(appts, services, staff, rev)
		assert.InDelta(t, 35.2, m.DirectLabor, 1e-9) // 80 * 40% * 1.10
		assert.InDelta(t, 6.50, m.COGS, 1e-9)
		assert.InDelta(t, 80-6.50-2.62, m.GrossMargin, 1e-9)
		assert.InDelta(t, 80-6.50-2.62-35.2, m.ContributionMargin, 1e-9)
		assert.InDelta(t, m.ContributionMargin/80*100, m.ContributionMarginPct, 1e-9)
		assert.InDelta(t, m.ContributionMargin, m.AvgMarginPerAppointment, 1e-9)
	})

	t.Run("hourly labor uses the effective duration", func(t *testing.T) {
		a := appt(hourlyID, 60, 60)
		a.ActualDurationMin = ptrI(90)

		m := Margins([]entity.Appointment{a}, services, staff, RevenueMetrics{NetSales: 60})
		assert.InDelta(t, 36.0, m.DirectLabor, 1e-9) // 1.5h * 24
	})

	t.Run("staff without a compensation plan contribute zero labor", func(t *testing.T) {
		m := Margins([]entity.Appointment{appt(noPlanID, 60, 60)}, services, staff, RevenueMetrics{NetSales: 60})
		assert.Zero(t, m.DirectLabor)
	})

	t.Run("non-completed appointments carry no cost", func(t *testing.T) {
		a := appt(commissionID, 80, 60)
		a.Status = enum.AppointmentStatusCancelled

		m := Margins([]entity.Appointment{a}, services, staff, RevenueMetrics{})
		assert.Zero(t, m.COGS)
		assert.Zero(t, m.DirectLabor)
		assert.Zero(t, m.AvgMarginPerAppointment, "no completed appointments to average over")
	})

	t.Run("zero net sales guards the percentage", func(t *testing.T) {
		m := Margins(nil, services, staff, RevenueMetrics{})
		assert.Zero(t, m.ContributionMarginPct)
	})

	t.Run("unknown service and staff ids are skipped", func(t *testing.T) {
		a := completedAppt(10, 50, 0)
		stray := uuid.New()
		a.StaffID = &stray

		m := Margins([]entity.Appointment{a}, services, staff, RevenueMetrics{NetSales: 50})
		assert.Zero(t, m.COGS)
		assert.Zero(t, m.DirectLabor)
	})
}
