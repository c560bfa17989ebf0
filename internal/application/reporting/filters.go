package reporting

import (
	"time"

	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/domain/enum"
)

// Preset names a relative reporting period resolved against "now".
type Preset string

const (
	PresetToday     Preset = "today"
	PresetYesterday Preset = "yesterday"
	PresetLast7     Preset = "last7"
	PresetThisWeek  Preset = "thisWeek"
	PresetLast30    Preset = "last30"
	PresetThisMonth Preset = "thisMonth"
	PresetLastMonth Preset = "lastMonth"
	PresetQuarter   Preset = "quarter"
	PresetYTD       Preset = "ytd"
	PresetCustom    Preset = "custom"
)

// TimeBasis selects which date field governs a transaction's inclusion in a
// report period.
type TimeBasis string

const (
	TimeBasisCheckout    TimeBasis = "checkout"
	TimeBasisTransaction TimeBasis = "transaction"
)

// Filters describes a report request: a date range (preset or custom) plus
// zero or more facet arrays. An empty facet array is opt-out — it never
// excludes anything.
type Filters struct {
	Preset    Preset     `json:"preset" form:"preset"`
	StartDate *time.Time `json:"start_date,omitempty" form:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty" form:"end_date"`

	StaffIDs       []uuid.UUID              `json:"staff_ids,omitempty" form:"staff_id"`
	ServiceIDs     []uuid.UUID              `json:"service_ids,omitempty" form:"service_id"`
	PetSizes       []enum.PetSize           `json:"pet_sizes,omitempty" form:"pet_size"`
	Channels       []enum.BookingChannel    `json:"channels,omitempty" form:"channel"`
	Statuses       []enum.AppointmentStatus `json:"statuses,omitempty" form:"status"`
	PaymentMethods []enum.PaymentMethod     `json:"payment_methods,omitempty" form:"payment_method"`

	TimeBasis TimeBasis `json:"time_basis" form:"time_basis"`
}

// DateRange is a closed interval of instants
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the range, boundaries included
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}
