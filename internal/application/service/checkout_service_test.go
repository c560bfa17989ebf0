package service

import (
	"testing"

	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }

func registerSettings() *entity.SalonSettings {
	s := entity.DefaultSalonSettings()
	s.TaxRatePct = 8
	return s
}

func TestCheckoutTotals(t *testing.T) {
	svc := &CheckoutService{}

	t.Run("cash sale carries no processing fee", func(t *testing.T) {
		txn := &entity.Transaction{
			PaymentMethod: enum.PaymentMethodCash,
			TipTotal:      10,
			Items: []entity.TransactionItem{
				{Quantity: 1, UnitPrice: 80, Discount: fptr(5)},
				{Quantity: 2, UnitPrice: 10},
			},
		}
		svc.totalUp(txn, registerSettings())

		assert.InDelta(t, 100.0, txn.Subtotal, 1e-9)
		assert.InDelta(t, 5.0, txn.DiscountTotal, 1e-9)
		assert.InDelta(t, 7.60, txn.TaxTotal, 1e-9)
		assert.InDelta(t, 112.60, txn.TotalCollected, 1e-9)
		assert.Nil(t, txn.ProcessingFee)
	})

	t.Run("card sale records the processing fee", func(t *testing.T) {
		txn := &entity.Transaction{
			PaymentMethod: enum.PaymentMethodCard,
			Items:         []entity.TransactionItem{{Quantity: 1, UnitPrice: 100}},
		}
		svc.totalUp(txn, registerSettings())

		assert.InDelta(t, 108.0, txn.TotalCollected, 1e-9)
		if assert.NotNil(t, txn.ProcessingFee) {
			// 2.9% of subtotal+tax+tip plus the fixed 30 cents
			assert.InDelta(t, 3.43, *txn.ProcessingFee, 1e-9)
		}
	})
}

func TestProcessorFee(t *testing.T) {
	svc := &CheckoutService{}

	txn := &entity.Transaction{
		Subtotal: 100,
		TaxTotal: 8,
		TipTotal: 20,
	}

	t.Run("fee base follows the configured policy", func(t *testing.T) {
		settings := registerSettings()

		settings.FeeBasePolicy = enum.FeeBaseSubtotal
		assert.InDelta(t, 3.20, svc.processorFee(txn, settings), 1e-9)

		settings.FeeBasePolicy = enum.FeeBaseSubtotalTax
		assert.InDelta(t, 3.43, svc.processorFee(txn, settings), 1e-9)

		settings.FeeBasePolicy = enum.FeeBaseSubtotalTaxTip
		assert.InDelta(t, 4.01, svc.processorFee(txn, settings), 1e-9)
	})

	t.Run("staff tip bearer shifts the tip's fee share off the salon", func(t *testing.T) {
		settings := registerSettings()
		settings.FeeBasePolicy = enum.FeeBaseSubtotalTaxTip
		settings.TipFeeBearer = enum.TipFeeBearerStaff

		// 4.01 less the 0.58 the tip contributed
		assert.InDelta(t, 3.43, svc.processorFee(txn, settings), 1e-9)
	})
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.43, round2(3.4252))
	assert.Equal(t, -3.43, round2(-3.4252))
	assert.Equal(t, 0.0, round2(0))
}
