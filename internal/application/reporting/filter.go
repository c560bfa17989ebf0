package reporting

import (
	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/pawsuite/salon-api/internal/domain/enum"
)

func member[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// FilterAppointments returns the appointments whose scheduled date falls
// inside the range and which match every non-empty facet array. Appointments
// with a zero date are silently dropped rather than failing the report.
func FilterAppointments(appts []entity.Appointment, f Filters, r DateRange) []entity.Appointment {
	out := make([]entity.Appointment, 0, len(appts))
	for _, a := range appts {
		if a.ScheduledAt.IsZero() || !r.Contains(a.ScheduledAt) {
			continue
		}
		if len(f.StaffIDs) > 0 && (a.StaffID == nil || !member(f.StaffIDs, *a.StaffID)) {
			continue
		}
		if len(f.ServiceIDs) > 0 && !member(f.ServiceIDs, a.ServiceID) {
			continue
		}
		if len(f.PetSizes) > 0 && !member(f.PetSizes, a.PetSize) {
			continue
		}
		if len(f.Channels) > 0 && !member(f.Channels, a.Channel) {
			continue
		}
		if len(f.Statuses) > 0 {
			// The status facet vocabulary only names terminal states, so a
			// scheduled appointment can never match a non-empty status filter.
			if a.Status == enum.AppointmentStatusScheduled {
				continue
			}
			if !member(f.Statuses, a.Status) {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

// FilterTransactions returns the transactions whose governing date (selected
// by the time basis) falls inside the range and which match the payment
// method facet when it is non-empty.
func FilterTransactions(txns []entity.Transaction, f Filters, r DateRange) []entity.Transaction {
	out := make([]entity.Transaction, 0, len(txns))
	for _, t := range txns {
		date := t.CheckoutAt
		if f.TimeBasis == TimeBasisTransaction {
			date = t.TransactionDate
		}
		if date.IsZero() || !r.Contains(date) {
			continue
		}
		if len(f.PaymentMethods) > 0 && !member(f.PaymentMethods, t.PaymentMethod) {
			continue
		}
		out = append(out, t)
	}
	return out
}
