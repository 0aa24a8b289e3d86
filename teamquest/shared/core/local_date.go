package core

import (
	"time"
)

// DateLayout is the format of SetDate values.
const DateLayout = "2006-01-02"

// DefaultTimezone is used when no location is configured.
const DefaultTimezone = "Asia/Tokyo"

// LocalDate returns the calendar date of t in loc. Daily quest sets roll over at local midnight.
func LocalDate(t time.Time, loc *time.Location) SetDateString {
	if loc == nil {
		loc = time.UTC
	}

	return t.In(loc).Format(DateLayout)
}
