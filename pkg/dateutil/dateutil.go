package dateutil

import (
	"fmt"
	"time"
)

// DisplayFormat is the dd-MM-yyyy HH:mm layout used in CLI output
const DisplayFormat = "02-01-2006 15:04"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// MinuteOfDay returns the minutes elapsed since midnight, dropping seconds
func MinuteOfDay(date time.Time) int {
	return date.Hour()*60 + date.Minute()
}

// AtMinute returns the given day at minuteOfDay minutes past midnight
func AtMinute(day time.Time, minuteOfDay int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, minuteOfDay, 0, 0, day.Location())
}

// DaysInMonth returns the number of days of month in year
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// ParseDate parses date string in various formats
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"02.01.2006",
		"02-01-2006",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", dateStr)
}

// ParseDateTime parses a date with time of day, falling back to date-only
// forms at midnight. Values without a zone are read in loc.
func ParseDateTime(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02T15:04:05",
		DisplayFormat,
		"02.01.2006 15:04",
		"2006-01-02",
		"02.01.2006",
		"02-01-2006",
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date-time %q", value)
}

// FormatDisplay formats date in DisplayFormat
func FormatDisplay(date time.Time) string {
	return date.Format(DisplayFormat)
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
