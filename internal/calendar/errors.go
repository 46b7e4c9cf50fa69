package calendar

import "errors"

// Error kinds returned by the calendar. Callers match them with errors.Is;
// the returned errors wrap these with details about the offending input.
var (
	// ErrInvalidArgument is returned for malformed or missing input: an unset
	// start time, an hour or minute out of range, a date that does not exist.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotConfigured is returned when an increment is requested before the
	// working hours have been set.
	ErrNotConfigured = errors.New("working hours not configured")

	// ErrInvalidConfiguration is returned when the stored configuration cannot
	// be used: the working-hours window is empty or inverted, or no workday
	// can be reached from a date.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
