package enum

import "database/sql/driver"

// BookingChannel represents how an appointment was booked
type BookingChannel string

const (
	BookingChannelWalkIn BookingChannel = "walk-in"
	BookingChannelPhone  BookingChannel = "phone"
	BookingChannelOnline BookingChannel = "online"
	BookingChannelApp    BookingChannel = "app"
)

func (c BookingChannel) String() string {
	return string(c)
}

func (c BookingChannel) Value() (driver.Value, error) {
	return string(c), nil
}

func (c *BookingChannel) Scan(value interface{}) error {
	if value == nil {
		*c = BookingChannelWalkIn
		return nil
	}
	switch v := value.(type) {
	case string:
		*c = BookingChannel(v)
	case []byte:
		*c = BookingChannel(string(v))
	}
	return nil
}
