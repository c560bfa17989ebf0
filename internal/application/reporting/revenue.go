package reporting

import (
	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/pawsuite/salon-api/internal/domain/enum"
)

// RevenueMetrics is the transaction-ledger view of money earned over a period.
// AppointmentRevenue is derived from the appointment ledger and reported
// separately; the two ledgers are not reconciled here.
type RevenueMetrics struct {
	GrossSales         float64 `json:"gross_sales"`
	Discounts          float64 `json:"discounts"`
	Refunds            float64 `json:"refunds"`
	NetSales           float64 `json:"net_sales"`
	TaxesCollected     float64 `json:"taxes_collected"`
	Tips               float64 `json:"tips"`
	TotalCollected     float64 `json:"total_collected"`
	ProcessingFees     float64 `json:"processing_fees"`
	InvoiceCount       int     `json:"invoice_count"`
	AvgTicket          float64 `json:"avg_ticket"`
	AppointmentRevenue float64 `json:"appointment_revenue"`
}

// Revenue derives sales totals from filtered transactions and appointments.
// Settings may be nil; without it, transactions lacking an explicit
// processing fee contribute zero fees.
func Revenue(appts []entity.Appointment, txns []entity.Transaction, settings *entity.SalonSettings) RevenueMetrics {
	var m RevenueMetrics

	for _, t := range txns {
		m.GrossSales += t.Subtotal
		m.Discounts += t.DiscountTotal
		m.Refunds += t.RefundTotal
		m.TaxesCollected += t.TaxTotal
		m.Tips += t.TipTotal
		m.TotalCollected += t.TotalCollected
		m.ProcessingFees += processingFee(t, settings)
		if t.Status == enum.TransactionStatusCompleted {
			m.InvoiceCount++
		}
	}

	m.NetSales = m.GrossSales - m.Discounts - m.Refunds
	if m.InvoiceCount > 0 {
		m.AvgTicket = m.NetSales / float64(m.InvoiceCount)
	}

	for _, a := range appts {
		if a.Status == enum.AppointmentStatusCompleted {
			m.AppointmentRevenue += a.NetPrice()
		}
	}

	return m
}

// processingFee returns the transaction's recorded fee when present,
// otherwise an estimate from the salon's processor fee policy.
func processingFee(t entity.Transaction, settings *entity.SalonSettings) float64 {
	if t.ProcessingFee != nil {
		return *t.ProcessingFee
	}
	if settings == nil {
		return 0
	}

	base := t.Subtotal
	switch settings.FeeBasePolicy {
	case enum.FeeBaseSubtotalTax:
		base += t.TaxTotal
	case enum.FeeBaseSubtotalTaxTip:
		base += t.TaxTotal + t.TipTotal
	}
	return base*settings.ProcessorFeeRatePct/100 + settings.ProcessorFeeFixed
}
