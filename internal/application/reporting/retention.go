package reporting

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/pawsuite/salon-api/internal/domain/enum"
)

// DefaultLapsedThresholdDays is used when settings are absent or carry no threshold
const DefaultLapsedThresholdDays = 90

// RetentionMetrics measures how reliably customers come back.
//
// The rebook buckets are cumulative, not disjoint: a same-day rebook counts
// toward all three rates.
type RetentionMetrics struct {
	CompletedCount    int `json:"completed_count"`
	RebookedWithin24h int `json:"rebooked_within_24h"`
	RebookedWithin7d  int `json:"rebooked_within_7d"`
	RebookedWithin30d int `json:"rebooked_within_30d"`

	RebookRate24hPct float64 `json:"rebook_rate_24h_pct"`
	RebookRate7dPct  float64 `json:"rebook_rate_7d_pct"`
	RebookRate30dPct float64 `json:"rebook_rate_30d_pct"`

	AvgDaysToNextVisit float64 `json:"avg_days_to_next_visit"`

	LapsedCount       int         `json:"lapsed_count"`
	LapsedCustomerIDs []uuid.UUID `json:"lapsed_customer_ids"`
}

// Retention derives rebooking rates from filtered appointments, and lapsed
// customers from the full customer collection — lapsed detection is a
// point-in-time snapshot against now, independent of the report's date range.
func Retention(appts []entity.Appointment, customers []entity.Customer, settings *entity.SalonSettings, now time.Time) RetentionMetrics {
	var m RetentionMetrics

	byCustomer := make(map[uuid.UUID][]time.Time)

	for _, a := range appts {
		if a.Status != enum.AppointmentStatusCompleted {
			continue
		}
		m.CompletedCount++
		byCustomer[a.CustomerID] = append(byCustomer[a.CustomerID], a.ScheduledAt)

		if a.RebookedAt == nil {
			continue
		}
		base := a.ScheduledAt
		if a.CompletedAt != nil {
			base = *a.CompletedAt
		}
		gapDays := a.RebookedAt.Sub(base).Hours() / 24
		if gapDays <= 1 {
			m.RebookedWithin24h++
		}
		if gapDays <= 7 {
			m.RebookedWithin7d++
		}
		if gapDays <= 30 {
			m.RebookedWithin30d++
		}
	}

	if m.CompletedCount > 0 {
		total := float64(m.CompletedCount)
		m.RebookRate24hPct = float64(m.RebookedWithin24h) / total * 100
		m.RebookRate7dPct = float64(m.RebookedWithin7d) / total * 100
		m.RebookRate30dPct = float64(m.RebookedWithin30d) / total * 100
	}

	// Mean of successive inter-visit gaps across all customers.
	var gapSum float64
	gapCount := 0
	for _, visits := range byCustomer {
		sort.Slice(visits, func(i, j int) bool { return visits[i].Before(visits[j]) })
		for i := 1; i < len(visits); i++ {
			gapSum += visits[i].Sub(visits[i-1]).Hours() / 24
			gapCount++
		}
	}
	if gapCount > 0 {
		m.AvgDaysToNextVisit = gapSum / float64(gapCount)
	}

	threshold := DefaultLapsedThresholdDays
	if settings != nil && settings.LapsedThresholdDays > 0 {
		threshold = settings.LapsedThresholdDays
	}
	cutoff := now.AddDate(0, 0, -threshold)
	for _, c := range customers {
		if c.LastVisit != nil && c.LastVisit.Before(cutoff) {
			m.LapsedCount++
			m.LapsedCustomerIDs = append(m.LapsedCustomerIDs, c.ID)
		}
	}

	return m
}
