package enum

import "database/sql/driver"

// PetSize represents the size class of a pet, used for pricing and duration overrides
type PetSize string

const (
	PetSizeSmall  PetSize = "small"
	PetSizeMedium PetSize = "medium"
	PetSizeLarge  PetSize = "large"
	PetSizeXLarge PetSize = "xlarge"
)

func (p PetSize) String() string {
	return string(p)
}

// IsValid reports whether the value is one of the known size classes
func (p PetSize) IsValid() bool {
	switch p {
	case PetSizeSmall, PetSizeMedium, PetSizeLarge, PetSizeXLarge:
		return true
	}
	return false
}

func (p PetSize) Value() (driver.Value, error) {
	return string(p), nil
}

func (p *PetSize) Scan(value interface{}) error {
	if value == nil {
		*p = PetSizeMedium
		return nil
	}
	switch v := value.(type) {
	case string:
		*p = PetSize(v)
	case []byte:
		*p = PetSize(string(v))
	}
	return nil
}
