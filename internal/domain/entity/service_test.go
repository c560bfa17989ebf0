package entity

import (
	"testing"

	"github.com/pawsuite/salon-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }
func i(v int) *int         { return &v }

func TestServicePriceFor(t *testing.T) {
	svc := Service{
		BasePrice:       60,
		BaseDurationMin: 90,
		SizeOverrides: map[enum.PetSize]SizeOverride{
			enum.PetSizeLarge: {Price: f(85), DurationMin: i(120)},
			enum.PetSizeSmall: {DurationMin: i(75)},
		},
	}

	assert.Equal(t, 85.0, svc.PriceFor(enum.PetSizeLarge))
	assert.Equal(t, 120, svc.DurationFor(enum.PetSizeLarge))

	// partial override keeps the base price
	assert.Equal(t, 60.0, svc.PriceFor(enum.PetSizeSmall))
	assert.Equal(t, 75, svc.DurationFor(enum.PetSizeSmall))

	// no override at all
	assert.Equal(t, 60.0, svc.PriceFor(enum.PetSizeMedium))
	assert.Equal(t, 90, svc.DurationFor(enum.PetSizeMedium))
}

func TestStaffLaborCostFor(t *testing.T) {
	commission := Staff{CompensationType: enum.CompensationCommission, CommissionRatePct: 40}
	assert.InDelta(t, 32.0, commission.LaborCostFor(80, 60), 1e-9)

	commission.EmployerBurdenPct = f(10)
	assert.InDelta(t, 35.2, commission.LaborCostFor(80, 60), 1e-9)

	hourly := Staff{CompensationType: enum.CompensationHourly, HourlyRate: 24}
	assert.InDelta(t, 36.0, hourly.LaborCostFor(80, 90), 1e-9)

	noPlan := Staff{}
	assert.Zero(t, noPlan.LaborCostFor(80, 60))
}

func TestAppointmentHelpers(t *testing.T) {
	a := Appointment{Price: 80, Discount: 10, DurationMin: 90}
	assert.Equal(t, 70.0, a.NetPrice())
	assert.Equal(t, 90, a.EffectiveDurationMin())

	a.ActualDurationMin = i(105)
	assert.Equal(t, 105, a.EffectiveDurationMin())
}

func TestTransactionItemLineTotal(t *testing.T) {
	item := TransactionItem{Quantity: 3, UnitPrice: 12.50}
	assert.InDelta(t, 37.50, item.LineTotal(), 1e-9)

	item.Discount = f(5)
	assert.InDelta(t, 32.50, item.LineTotal(), 1e-9)
}
