package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// WorkingHours is the daily working window, stored as minutes since midnight.
// Both edges belong to the window.
type WorkingHours struct {
	Start int
	End   int
}

// NewWorkingHours validates the components and builds a window.
// Hour 24 is accepted only as 24:00, the end of the day.
func NewWorkingHours(startHour, startMinute, endHour, endMinute int) (WorkingHours, error) {
	if err := validateClock(startHour, startMinute, "start"); err != nil {
		return WorkingHours{}, err
	}
	if err := validateClock(endHour, endMinute, "end"); err != nil {
		return WorkingHours{}, err
	}

	wh := WorkingHours{
		Start: startHour*60 + startMinute,
		End:   endHour*60 + endMinute,
	}
	if err := wh.Validate(); err != nil {
		return WorkingHours{}, err
	}
	return wh, nil
}

// ParseWorkingHours parses a window from two "HH:MM" strings.
func ParseWorkingHours(start, end string) (WorkingHours, error) {
	sh, sm, err := parseClock(start)
	if err != nil {
		return WorkingHours{}, fmt.Errorf("start: %w", err)
	}
	eh, em, err := parseClock(end)
	if err != nil {
		return WorkingHours{}, fmt.Errorf("end: %w", err)
	}
	return NewWorkingHours(sh, sm, eh, em)
}

// Validate checks that the window is non-empty and does not span midnight.
func (wh WorkingHours) Validate() error {
	if wh.Start < 0 || wh.End > minutesPerDay {
		return fmt.Errorf("%w: window %s outside of a single day", ErrInvalidConfiguration, wh)
	}
	if wh.Start >= wh.End {
		return fmt.Errorf("%w: start %s must be earlier than end %s",
			ErrInvalidConfiguration, formatClock(wh.Start), formatClock(wh.End))
	}
	return nil
}

// Minutes returns the length of the working day in minutes.
func (wh WorkingHours) Minutes() int {
	return wh.End - wh.Start
}

// Contains reports whether a minute-of-day falls inside the window.
func (wh WorkingHours) Contains(minuteOfDay int) bool {
	return minuteOfDay >= wh.Start && minuteOfDay <= wh.End
}

func (wh WorkingHours) String() string {
	return formatClock(wh.Start) + "-" + formatClock(wh.End)
}

func validateClock(hour, minute int, label string) error {
	if hour < 0 || hour > 24 {
		return fmt.Errorf("%w: %s hour %d must be between 0 and 24", ErrInvalidArgument, label, hour)
	}
	if minute < 0 || minute > 59 {
		return fmt.Errorf("%w: %s minute %d must be between 0 and 59", ErrInvalidArgument, label, minute)
	}
	if hour == 24 && minute != 0 {
		return fmt.Errorf("%w: %s time 24:%02d is past the end of the day", ErrInvalidArgument, label, minute)
	}
	return nil
}

func parseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: time %q, expected HH:MM", ErrInvalidArgument, s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: hour in %q", ErrInvalidArgument, s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: minute in %q", ErrInvalidArgument, s)
	}
	return hour, minute, nil
}

func formatClock(minuteOfDay int) string {
	return fmt.Sprintf("%02d:%02d", minuteOfDay/60, minuteOfDay%60)
}
