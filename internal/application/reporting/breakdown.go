package reporting

import (
	"sort"

	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/pawsuite/salon-api/internal/domain/enum"
)

// ServiceGroup is the per-service slice of a breakdown report
type ServiceGroup struct {
	ServiceID   uuid.UUID `json:"service_id"`
	ServiceName string    `json:"service_name"`
	Count       int       `json:"count"`

	GrossRevenue           float64 `json:"gross_revenue"`
	Discounts              float64 `json:"discounts"`
	NetRevenue             float64 `json:"net_revenue"`
	AvgTicket              float64 `json:"avg_ticket"`
	DiscountPct            float64 `json:"discount_pct"`
	AvgDurationVarianceMin float64 `json:"avg_duration_variance_min"`
	EstimatedCOGS          float64 `json:"estimated_cogs"`
}

// StaffGroup is the per-staff slice of a breakdown report
type StaffGroup struct {
	StaffID   uuid.UUID `json:"staff_id"`
	StaffName string    `json:"staff_name"`
	Count     int       `json:"count"`

	Revenue                float64 `json:"revenue"`
	AvgTicket              float64 `json:"avg_ticket"`
	AvgDurationVarianceMin float64 `json:"avg_duration_variance_min"`
	HoursWorked            float64 `json:"hours_worked"`
	RevenuePerHour         float64 `json:"revenue_per_hour"`
	RebookCount            int     `json:"rebook_count"`
	RebookRatePct          float64 `json:"rebook_rate_pct"`
	NoShowRatePct          float64 `json:"no_show_rate_pct"`
}

// ServiceBreakdown groups completed appointments by service and computes
// per-service revenue and duration statistics, sorted descending by net
// revenue. Ties keep encounter order (stable sort).
func ServiceBreakdown(appts []entity.Appointment, services []entity.Service) []ServiceGroup {
	svcByID := make(map[uuid.UUID]entity.Service, len(services))
	for _, s := range services {
		svcByID[s.ID] = s
	}

	groups := make(map[uuid.UUID]*ServiceGroup)
	varianceSums := make(map[uuid.UUID]float64)
	varianceCounts := make(map[uuid.UUID]int)
	order := make([]uuid.UUID, 0)

	for _, a := range appts {
		if a.Status != enum.AppointmentStatusCompleted {
			continue
		}
		g, ok := groups[a.ServiceID]
		if !ok {
			g = &ServiceGroup{ServiceID: a.ServiceID}
			if svc, found := svcByID[a.ServiceID]; found {
				g.ServiceName = svc.Name
			}
			groups[a.ServiceID] = g
			order = append(order, a.ServiceID)
		}
		g.Count++
		g.GrossRevenue += a.Price
		g.Discounts += a.Discount
		if a.ActualDurationMin != nil && a.DurationMin > 0 {
			varianceSums[a.ServiceID] += float64(*a.ActualDurationMin - a.DurationMin)
			varianceCounts[a.ServiceID]++
		}
	}

	result := make([]ServiceGroup, 0, len(groups))
	for _, id := range order {
		g := groups[id]
		g.NetRevenue = g.GrossRevenue - g.Discounts
		if g.Count > 0 {
			g.AvgTicket = g.NetRevenue / float64(g.Count)
		}
		if g.GrossRevenue != 0 {
			g.DiscountPct = g.Discounts / g.GrossRevenue * 100
		}
		if n := varianceCounts[id]; n > 0 {
			g.AvgDurationVarianceMin = varianceSums[id] / float64(n)
		}
		if svc, found := svcByID[id]; found && svc.EstimatedSupplyCost != nil {
			g.EstimatedCOGS = *svc.EstimatedSupplyCost * float64(g.Count)
		}
		result = append(result, *g)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].NetRevenue > result[j].NetRevenue
	})
	return result
}

// staffTally accumulates per-staff counts before rates are derived
type staffTally struct {
	group         StaffGroup
	total         int
	cancelled     int
	noShows       int
	varianceSum   float64
	varianceCount int
}

// StaffBreakdown groups filtered appointments by staff member. Revenue,
// hours, and rebooks come from completed appointments; the no-show rate uses
// the staff member's full filtered set (cancellations excluded from the
// denominator, as in AppointmentStats). Sorted descending by revenue.
func StaffBreakdown(appts []entity.Appointment, staff []entity.Staff) []StaffGroup {
	staffByID := make(map[uuid.UUID]entity.Staff, len(staff))
	for _, s := range staff {
		staffByID[s.ID] = s
	}

	tallies := make(map[uuid.UUID]*staffTally)
	order := make([]uuid.UUID, 0)

	for _, a := range appts {
		if a.StaffID == nil {
			continue
		}
		id := *a.StaffID
		t, ok := tallies[id]
		if !ok {
			t = &staffTally{group: StaffGroup{StaffID: id}}
			if st, found := staffByID[id]; found {
				t.group.StaffName = st.Name
			}
			tallies[id] = t
			order = append(order, id)
		}
		t.total++

		switch a.Status {
		case enum.AppointmentStatusCompleted:
			t.group.Count++
			t.group.Revenue += a.NetPrice()
			t.group.HoursWorked += float64(a.EffectiveDurationMin()) / 60
			if a.RebookedAt != nil {
				t.group.RebookCount++
			}
			if a.ActualDurationMin != nil && a.DurationMin > 0 {
				t.varianceSum += float64(*a.ActualDurationMin - a.DurationMin)
				t.varianceCount++
			}
		case enum.AppointmentStatusCancelled:
			t.cancelled++
		case enum.AppointmentStatusNoShow:
			t.noShows++
		}
	}

	result := make([]StaffGroup, 0, len(tallies))
	for _, id := range order {
		t := tallies[id]
		g := t.group
		if g.Count > 0 {
			g.AvgTicket = g.Revenue / float64(g.Count)
			g.RebookRatePct = float64(g.RebookCount) / float64(g.Count) * 100
		}
		if g.HoursWorked > 0 {
			g.RevenuePerHour = g.Revenue / g.HoursWorked
		}
		if held := t.total - t.cancelled; held > 0 {
			g.NoShowRatePct = float64(t.noShows) / float64(held) * 100
		}
		if t.varianceCount > 0 {
			g.AvgDurationVarianceMin = t.varianceSum / float64(t.varianceCount)
		}
		result = append(result, g)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Revenue > result[j].Revenue
	})
	return result
}
