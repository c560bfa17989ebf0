package reporting

import (
	"testing"

	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func TestRevenue(t *testing.T) {
	t.Run("empty inputs yield all zeros", func(t *testing.T) {
		m := Revenue(nil, nil, nil)
		assert.Zero(t, m.GrossSales)
		assert.Zero(t, m.NetSales)
		assert.Zero(t, m.AvgTicket, "avg ticket guards against zero invoices")
		assert.Zero(t, m.InvoiceCount)
	})

	t.Run("single discounted sale", func(t *testing.T) {
		tx := completedTxn(10, 100)
		tx.DiscountTotal = 10
		tx.TaxTotal = 7.2
		tx.TipTotal = 15
		tx.TotalCollected = 112.2
		tx.ProcessingFee = ptrF(3.55)

		m := Revenue(nil, []entity.Transaction{tx}, nil)
		assert.Equal(t, 100.0, m.GrossSales)
		assert.Equal(t, 10.0, m.Discounts)
		assert.Equal(t, 90.0, m.NetSales)
		assert.Equal(t, 7.2, m.TaxesCollected)
		assert.Equal(t, 15.0, m.Tips)
		assert.Equal(t, 112.2, m.TotalCollected)
		assert.Equal(t, 3.55, m.ProcessingFees)
		assert.Equal(t, 1, m.InvoiceCount)
		assert.Equal(t, 90.0, m.AvgTicket)
	})

	t.Run("refunds reduce net sales and pending invoices do not count", func(t *testing.T) {
		sale := completedTxn(10, 200)
		refunded := completedTxn(11, 80)
		refunded.RefundTotal = 80
		refunded.Status = enum.TransactionStatusRefunded
		pending := completedTxn(12, 40)
		pending.Status = enum.TransactionStatusPending

		m := Revenue(nil, []entity.Transaction{sale, refunded, pending}, nil)
		assert.Equal(t, 320.0, m.GrossSales)
		assert.Equal(t, 80.0, m.Refunds)
		assert.Equal(t, 240.0, m.NetSales)
		assert.Equal(t, 1, m.InvoiceCount)
		assert.Equal(t, 240.0, m.AvgTicket)
	})

	t.Run("appointment revenue is tracked separately from the transaction ledger", func(t *testing.T) {
		completed := completedAppt(10, 60, 5)
		cancelled := completedAppt(11, 60, 0)
		cancelled.Status = enum.AppointmentStatusCancelled

		m := Revenue([]entity.Appointment{completed, cancelled}, nil, nil)
		assert.Equal(t, 55.0, m.AppointmentRevenue)
		assert.Zero(t, m.GrossSales)
	})
}

func TestProcessingFeeEstimate(t *testing.T) {
	settings := &entity.SalonSettings{
		ProcessorFeeRatePct: 2.9,
		ProcessorFeeFixed:   0.30,
		FeeBasePolicy:       enum.FeeBaseSubtotalTaxTip,
	}

	tx := completedTxn(10, 100)
	tx.TaxTotal = 8
	tx.TipTotal = 12

	t.Run("explicit fee wins over the estimate", func(t *testing.T) {
		withFee := tx
		withFee.ProcessingFee = ptrF(2.00)
		m := Revenue(nil, []entity.Transaction{withFee}, settings)
		assert.Equal(t, 2.00, m.ProcessingFees)
	})

	t.Run("subtotal_tax_tip base", func(t *testing.T) {
		m := Revenue(nil, []entity.Transaction{tx}, settings)
		assert.InDelta(t, 120*0.029+0.30, m.ProcessingFees, 1e-9)
	})

	t.Run("subtotal_tax base excludes tips", func(t *testing.T) {
		s := *settings
		s.FeeBasePolicy = enum.FeeBaseSubtotalTax
		m := Revenue(nil, []entity.Transaction{tx}, &s)
		assert.InDelta(t, 108*0.029+0.30, m.ProcessingFees, 1e-9)
	})

	t.Run("subtotal base excludes tax and tips", func(t *testing.T) {
		s := *settings
		s.FeeBasePolicy = enum.FeeBaseSubtotal
		m := Revenue(nil, []entity.Transaction{tx}, &s)
		assert.InDelta(t, 100*0.029+0.30, m.ProcessingFees, 1e-9)
	})

	t.Run("nil settings estimate zero", func(t *testing.T) {
		m := Revenue(nil, []entity.Transaction{tx}, nil)
		assert.Zero(t, m.ProcessingFees)
	})
}
