package reporting

import (
	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/pawsuite/salon-api/internal/domain/enum"
)

// AppointmentMetrics summarizes scheduling outcomes over a period.
//
// The completion and no-show rates deliberately exclude cancellations from
// their denominator: a cancelled slot was never a show/no-show opportunity.
// CompletionRatePct and CancellationRatePct therefore do not sum to 100.
type AppointmentMetrics struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
	NoShows   int `json:"no_shows"`
	Scheduled int `json:"scheduled"`

	CompletionRatePct   float64 `json:"completion_rate_pct"`
	CancellationRatePct float64 `json:"cancellation_rate_pct"`
	NoShowRatePct       float64 `json:"no_show_rate_pct"`

	// Mean of (actual - planned) minutes over completed appointments that
	// report both durations; appointments missing either are excluded from
	// the mean, not counted as zero.
	AvgDurationVarianceMin float64 `json:"avg_duration_variance_min"`
}

// AppointmentStats derives status counts and rates from filtered appointments
func AppointmentStats(appts []entity.Appointment) AppointmentMetrics {
	var m AppointmentMetrics
	m.Total = len(appts)

	var varianceSum float64
	varianceCount := 0

	for _, a := range appts {
		switch a.Status {
		case enum.AppointmentStatusCompleted:
			m.Completed++
			if a.ActualDurationMin != nil && a.DurationMin > 0 {
				varianceSum += float64(*a.ActualDurationMin - a.DurationMin)
				varianceCount++
			}
		case enum.AppointmentStatusCancelled:
			m.Cancelled++
		case enum.AppointmentStatusNoShow:
			m.NoShows++
		case enum.AppointmentStatusScheduled:
			m.Scheduled++
		}
	}

	if held := m.Total - m.Cancelled; held > 0 {
		m.CompletionRatePct = float64(m.Completed) / float64(held) * 100
		m.NoShowRatePct = float64(m.NoShows) / float64(held) * 100
	}
	if m.Total > 0 {
		m.CancellationRatePct = float64(m.Cancelled) / float64(m.Total) * 100
	}
	if varianceCount > 0 {
		m.AvgDurationVarianceMin = varianceSum / float64(varianceCount)
	}

	return m
}
