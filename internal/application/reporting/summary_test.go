package reporting

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummary(t *testing.T) {
	now := time.Date(2025, 11, 15, 18, 0, 0, 0, time.UTC)

	svcID := uuid.New()
	staffID := uuid.New()

	appt := completedAppt(12, 80, 10)
	appt.ServiceID = svcID
	appt.StaffID = &staffID

	stale := completedAppt(12, 999, 0)
	stale.ScheduledAt = time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

	tx := completedTxn(12, 80)
	tx.DiscountTotal = 10
	tx.TotalCollected = 70

	snap := Snapshot{
		Appointments: []entity.Appointment{appt, stale},
		Transactions: []entity.Transaction{tx},
		Services: []entity.Service{
			{ID: svcID, Name: "Full Groom", BasePrice: 80, EstimatedSupplyCost: ptrF(5)},
		},
		Staff: []entity.Staff{
			{ID: staffID, Name: "Ana", CompensationType: enum.CompensationCommission, CommissionRatePct: 40},
		},
		Customers: []entity.Customer{
			{ID: uuid.New(), Name: "old", LastVisit: ptrT(now.AddDate(0, 0, -120))},
		},
		Settings: &entity.SalonSettings{
			ProcessorFeeRatePct: 2.9,
			ProcessorFeeFixed:   0.30,
			FeeBasePolicy:       enum.FeeBaseSubtotal,
			LapsedThresholdDays: 90,
		},
	}

	got := BuildSummary(snap, Filters{Preset: PresetThisMonth}, now)

	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), got.Range.Start)

	// Only the in-range appointment and transaction feed the calculators.
	assert.Equal(t, 70.0, got.Revenue.NetSales)
	assert.Equal(t, 70.0, got.Revenue.AppointmentRevenue)
	assert.Equal(t, 1, got.Appointments.Completed)

	assert.InDelta(t, 5.0, got.Margins.COGS, 1e-9)
	assert.InDelta(t, 28.0, got.Margins.DirectLabor, 1e-9)

	assert.Equal(t, 1, got.Retention.LapsedCount)

	require.Len(t, got.ByService, 1)
	assert.Equal(t, "Full Groom", got.ByService[0].ServiceName)
	require.Len(t, got.ByStaff, 1)
	assert.Equal(t, "Ana", got.ByStaff[0].StaffName)
}
