package enum

import "database/sql/driver"

// FeeBasePolicy selects which amounts the processor fee percentage applies to
type FeeBasePolicy string

const (
	FeeBaseSubtotal       FeeBasePolicy = "subtotal"
	FeeBaseSubtotalTax    FeeBasePolicy = "subtotal_tax"
	FeeBaseSubtotalTaxTip FeeBasePolicy = "subtotal_tax_tip"
)

func (p FeeBasePolicy) String() string {
	return string(p)
}

func (p FeeBasePolicy) Value() (driver.Value, error) {
	return string(p), nil
}

func (p *FeeBasePolicy) Scan(value interface{}) error {
	if value == nil {
		*p = FeeBaseSubtotal
		return nil
	}
	switch v := value.(type) {
	case string:
		*p = FeeBasePolicy(v)
	case []byte:
		*p = FeeBasePolicy(string(v))
	}
	return nil
}

// TipFeeBearer selects who absorbs the processor fee charged on tips
type TipFeeBearer string

const (
	TipFeeBearerSalon TipFeeBearer = "salon"
	TipFeeBearerStaff TipFeeBearer = "staff"
)

func (b TipFeeBearer) String() string {
	return string(b)
}

func (b TipFeeBearer) Value() (driver.Value, error) {
	return string(b), nil
}

func (b *TipFeeBearer) Scan(value interface{}) error {
	if value == nil {
		*b = TipFeeBearerSalon
		return nil
	}
	switch v := value.(type) {
	case string:
		*b = TipFeeBearer(v)
	case []byte:
		*b = TipFeeBearer(string(v))
	}
	return nil
}
