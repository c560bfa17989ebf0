package reporting

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func TestServiceBreakdown(t *testing.T) {
	bathID := uuid.New()
	groomID := uuid.New()
	services := []entity.Service{
		{ID: bathID, Name: "Bath & Brush", BasePrice: 40, EstimatedSupplyCost: ptrF(3)},
		{ID: groomID, Name: "Full Groom", BasePrice: 80},
	}

	forService := func(id uuid.UUID, price, discount float64) entity.Appointment {
		a := completedAppt(10, price, discount)
		a.ServiceID = id
		return a
	}

	t.Run("groups completed appointments and sorts by net revenue", func(t *testing.T) {
		appts := []entity.Appointment{
			forService(bathID, 40, 5),
			forService(bathID, 40, 0),
			forService(groomID, 80, 0),
		}

		groups := ServiceBreakdown(appts, services)
		assert.Len(t, groups, 2)

		assert.Equal(t, "Full Groom", groups[0].ServiceName)
		assert.Equal(t, 80.0, groups[0].NetRevenue)

		bath := groups[1]
		assert.Equal(t, "Bath & Brush", bath.ServiceName)
		assert.Equal(t, 2, bath.Count)
		assert.Equal(t, 80.0, bath.GrossRevenue)
		assert.Equal(t, 5.0, bath.Discounts)
		assert.Equal(t, 75.0, bath.NetRevenue)
		assert.InDelta(t, 37.5, bath.AvgTicket, 1e-9)
		assert.InDelta(t, 6.25, bath.DiscountPct, 1e-9)
		assert.InDelta(t, 6.0, bath.EstimatedCOGS, 1e-9) // 3.00 supply cost x 2
	})

	t.Run("services without a supply cost report zero cogs", func(t *testing.T) {
		groups := ServiceBreakdown([]entity.Appointment{forService(groomID, 80, 0)}, services)
		assert.Zero(t, groups[0].EstimatedCOGS)
	})

	t.Run("non-completed appointments are excluded", func(t *testing.T) {
		a := forService(bathID, 40, 0)
		a.Status = enum.AppointmentStatusNoShow

		groups := ServiceBreakdown([]entity.Appointment{a}, services)
		assert.Empty(t, groups)
	})

	t.Run("unknown service id keeps the row with an empty name", func(t *testing.T) {
		groups := ServiceBreakdown([]entity.Appointment{forService(uuid.New(), 25, 0)}, services)
		assert.Len(t, groups, 1)
		assert.Empty(t, groups[0].ServiceName)
		assert.Equal(t, 25.0, groups[0].NetRevenue)
	})
}

func TestStaffBreakdown(t *testing.T) {
	anaID := uuid.New()
	benID := uuid.New()
	staff := []entity.Staff{
		{ID: anaID, Name: "Ana"},
		{ID: benID, Name: "Ben"},
	}

	forStaff := func(id uuid.UUID, price float64, status enum.AppointmentStatus) entity.Appointment {
		a := completedAppt(10, price, 0)
		a.StaffID = &id
		a.Status = status
		return a
	}

	t.Run("revenue and hours come from completed appointments only", func(t *testing.T) {
		long := forStaff(anaID, 90, enum.AppointmentStatusCompleted)
		long.DurationMin = 60
		long.ActualDurationMin = ptrI(90)
		short := forStaff(anaID, 60, enum.AppointmentStatusCompleted)
		short.DurationMin = 60
		short.RebookedAt = ptrT(day(12))
		cancelled := forStaff(anaID, 40, enum.AppointmentStatusCancelled)

		groups := StaffBreakdown([]entity.Appointment{long, short, cancelled}, staff)
		assert.Len(t, groups, 1)

		ana := groups[0]
		assert.Equal(t, "Ana", ana.StaffName)
		assert.Equal(t, 2, ana.Count)
		assert.Equal(t, 150.0, ana.Revenue)
		assert.InDelta(t, 75.0, ana.AvgTicket, 1e-9)
		assert.InDelta(t, 2.5, ana.HoursWorked, 1e-9) // 90min actual + 60min planned
		assert.InDelta(t, 60.0, ana.RevenuePerHour, 1e-9)
		assert.Equal(t, 1, ana.RebookCount)
		assert.InDelta(t, 50.0, ana.RebookRatePct, 1e-9)
		assert.InDelta(t, 15.0, ana.AvgDurationVarianceMin, 1e-9)
	})

	t.Run("no-show rate excludes cancellations from its denominator", func(t *testing.T) {
		appts := []entity.Appointment{
			forStaff(benID, 50, enum.AppointmentStatusCompleted),
			forStaff(benID, 50, enum.AppointmentStatusNoShow),
			forStaff(benID, 50, enum.AppointmentStatusCancelled),
		}

		groups := StaffBreakdown(appts, staff)
		assert.InDelta(t, 50.0, groups[0].NoShowRatePct, 1e-9)
	})

	t.Run("unassigned appointments are skipped and sorting is by revenue", func(t *testing.T) {
		unassigned := completedAppt(10, 500, 0)
		appts := []entity.Appointment{
			unassigned,
			forStaff(benID, 40, enum.AppointmentStatusCompleted),
			forStaff(anaID, 120, enum.AppointmentStatusCompleted),
		}

		groups := StaffBreakdown(appts, staff)
		assert.Len(t, groups, 2)
		assert.Equal(t, "Ana", groups[0].StaffName)
		assert.Equal(t, "Ben", groups[1].StaffName)
	})
}
