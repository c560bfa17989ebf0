package enum

import "database/sql/driver"

// CompensationType discriminates how a staff member is paid.
// The empty value means no compensation plan is configured; labor cost
// derivations treat such staff as contributing zero.
type CompensationType string

const (
	CompensationNone       CompensationType = ""
	CompensationCommission CompensationType = "commission"
	CompensationHourly     CompensationType = "hourly"
)

func (t CompensationType) String() string {
	return string(t)
}

// IsSet reports whether a compensation plan is configured
func (t CompensationType) IsSet() bool {
	return t == CompensationCommission || t == CompensationHourly
}

func (t CompensationType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *CompensationType) Scan(value interface{}) error {
	if value == nil {
		*t = CompensationNone
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = CompensationType(v)
	case []byte:
		*t = CompensationType(string(v))
	}
	return nil
}
