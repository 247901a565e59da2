package utils

import (
	"fmt"
	"time"
)

// Booking timestamps arrive from the API in a handful of ISO-8601 shapes:
// with or without fractional seconds, with or without a zone offset.
// Layouts are tried in order, first match wins. Zoneless values are
// interpreted as UTC.
var bookingTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.0",
	"2006-01-02T15:04:05.00",
	"2006-01-02T15:04:05.000",
}

func ParseBookingTime(value string) (time.Time, error) {
	for _, layout := range bookingTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized booking time %q", value)
}
