package reporting

import (
	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/pawsuite/salon-api/internal/domain/enum"
)

// MarginMetrics approximates profitability over a period: supply costs,
// direct labor under each staff member's compensation plan, and the margins
// left after both.
type MarginMetrics struct {
	COGS                    float64 `json:"cogs"`
	DirectLabor             float64 `json:"direct_labor"`
	ContributionMargin      float64 `json:"contribution_margin"`
	ContributionMarginPct   float64 `json:"contribution_margin_pct"`
	GrossMargin             float64 `json:"gross_margin"`
	AvgMarginPerAppointment float64 `json:"avg_margin_per_appointment"`
}

// Margins derives cost and margin figures from filtered appointments, the
// service catalog, and staff compensation plans. NetSales and ProcessingFees
// come from the already-computed revenue metrics. Services without a supply
// cost and staff without a compensation plan contribute zero.
func Margins(appts []entity.Appointment, services []entity.Service, staff []entity.Staff, rev RevenueMetrics) MarginMetrics {
	svcByID := make(map[uuid.UUID]entity.Service, len(services))
	for _, s := range services {
		svcByID[s.ID] = s
	}
	staffByID := make(map[uuid.UUID]entity.Staff, len(staff))
	for _, s := range staff {
		staffByID[s.ID] = s
	}

	var m MarginMetrics
	completed := 0

	for _, a := range appts {
		if a.Status != enum.AppointmentStatusCompleted {
			continue
		}
		completed++

		if svc, ok := svcByID[a.ServiceID]; ok && svc.EstimatedSupplyCost != nil {
			m.COGS += *svc.EstimatedSupplyCost
		}

		if a.StaffID != nil {
			if st, ok := staffByID[*a.StaffID]; ok {
				m.DirectLabor += st.LaborCostFor(a.NetPrice(), a.EffectiveDurationMin())
			}
		}
	}

	m.ContributionMargin = rev.NetSales - m.COGS - rev.ProcessingFees - m.DirectLabor
	m.GrossMargin = rev.NetSales - m.COGS - rev.ProcessingFees
	if rev.NetSales != 0 {
		m.ContributionMarginPct = m.ContributionMargin / rev.NetSales * 100
	}
	if completed > 0 {
		m.AvgMarginPerAppointment = m.ContributionMargin / float64(completed)
	}

	return m
}
