package reporting

import (
	"time"

	"github.com/pawsuite/salon-api/internal/domain/entity"
)

// Snapshot is the in-memory dataset a summary is computed over. Callers load
// it from storage (or construct it directly in tests) so the calculators stay
// pure functions of their inputs.
type Snapshot struct {
	Appointments []entity.Appointment
	Transactions []entity.Transaction
	Services     []entity.Service
	Staff        []entity.Staff
	Customers    []entity.Customer
	Settings     *entity.SalonSettings
}

// Summary is the full report for one filter set and date range.
type Summary struct {
	Range        DateRange          `json:"range"`
	Revenue      RevenueMetrics     `json:"revenue"`
	Margins      MarginMetrics      `json:"margins"`
	Appointments AppointmentMetrics `json:"appointments"`
	Retention    RetentionMetrics   `json:"retention"`
	ByService    []ServiceGroup     `json:"by_service"`
	ByStaff      []StaffGroup       `json:"by_staff"`
}

// BuildSummary resolves the date range, applies the filters once, and runs
// every calculator over the filtered slices.
func BuildSummary(snap Snapshot, f Filters, now time.Time) Summary {
	r := ResolveRange(f, now)
	appts := FilterAppointments(snap.Appointments, f, r)
	txns := FilterTransactions(snap.Transactions, f, r)

	rev := Revenue(appts, txns, snap.Settings)
	return Summary{
		Range:        r,
		Revenue:      rev,
		Margins:      Margins(appts, snap.Services, snap.Staff, rev),
		Appointments: AppointmentStats(appts),
		Retention:    Retention(appts, snap.Customers, snap.Settings, now),
		ByService:    ServiceBreakdown(appts, snap.Services),
		ByStaff:      StaffBreakdown(appts, snap.Staff),
	}
}
