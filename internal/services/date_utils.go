package services

import (
	"errors"
	"time"
)

// DayLayout is the only calendar-day form Turno exchanges or compares.
const DayLayout = "2006-01-02"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayString normalizes a timestamp to its YYYY-MM-DD calendar day in the
// given location. Every ledger and period comparison goes through here.
func DayString(value time.Time, location *time.Location) string {
	return DateAtLocation(value, location).Format(DayLayout)
}

func ParseDay(raw string, location *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("date is required")
	}
	if location == nil {
		location = time.UTC
	}
	parsed, err := time.ParseInLocation(DayLayout, raw, location)
	if err != nil {
		return time.Time{}, err
	}
	return DateAtLocation(parsed, location), nil
}

// InclusiveDayCount counts the calendar days from start through end. Both
// dates are re-anchored at UTC midnight first, so DST transitions inside
// the range cannot skew the count in either direction.
func InclusiveDayCount(start time.Time, end time.Time) int {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(endDay.Sub(startDay).Hours()/24) + 1
}
