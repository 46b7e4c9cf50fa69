package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/username/workday-calendar/pkg/dateutil"
)

// referenceLeapYear is used to validate recurring holidays, so that Feb 29
// is accepted and applies only in leap years.
const referenceLeapYear = 2000

// civilDate is a calendar date without time of day or location.
type civilDate struct {
	Year  int
	Month time.Month
	Day   int
}

func civilDateOf(t time.Time) civilDate {
	return civilDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Holiday is a registered holiday as returned by HolidaySet.List.
type Holiday struct {
	Year      int // zero for recurring holidays
	Month     time.Month
	Day       int
	Recurring bool
	Note      string
}

func (h Holiday) String() string {
	if h.Recurring {
		return fmt.Sprintf("%02d-%02d", int(h.Month), h.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", h.Year, int(h.Month), h.Day)
}

// HolidaySet holds fixed (one-off) holidays and holidays recurring every
// year on the same month and day. Notes are optional labels.
type HolidaySet struct {
	fixed     map[civilDate]string
	recurring map[time.Month]map[int]string
}

// NewHolidaySet creates an empty HolidaySet
func NewHolidaySet() *HolidaySet {
	return &HolidaySet{
		fixed:     make(map[civilDate]string),
		recurring: make(map[time.Month]map[int]string),
	}
}

// AddFixed registers a one-off holiday on the date of t. Time of day is ignored.
func (hs *HolidaySet) AddFixed(t time.Time, note string) error {
	if t.IsZero() {
		return fmt.Errorf("%w: holiday date cannot be empty", ErrInvalidArgument)
	}
	hs.fixed[civilDateOf(t)] = note
	return nil
}

// AddRecurring registers a holiday repeating every year on month/day.
func (hs *HolidaySet) AddRecurring(month, day int, note string) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month %d must be between 1 and 12", ErrInvalidArgument, month)
	}
	if day < 1 || day > 31 {
		return fmt.Errorf("%w: day %d must be between 1 and 31", ErrInvalidArgument, day)
	}
	if day > dateutil.DaysInMonth(referenceLeapYear, time.Month(month)) {
		return fmt.Errorf("%w: %s %d does not exist", ErrInvalidArgument, time.Month(month), day)
	}

	days, ok := hs.recurring[time.Month(month)]
	if !ok {
		days = make(map[int]string)
		hs.recurring[time.Month(month)] = days
	}
	days[day] = note
	return nil
}

// Lookup returns the note of the holiday on the date of t, if any.
// Fixed holidays take precedence over recurring ones.
func (hs *HolidaySet) Lookup(t time.Time) (string, bool) {
	if note, ok := hs.fixed[civilDateOf(t)]; ok {
		return note, true
	}
	if days, ok := hs.recurring[t.Month()]; ok {
		if note, ok := days[t.Day()]; ok {
			return note, true
		}
	}
	return "", false
}

// Contains reports whether the date of t is a holiday.
func (hs *HolidaySet) Contains(t time.Time) bool {
	_, ok := hs.Lookup(t)
	return ok
}

// Len returns the number of registered holidays.
func (hs *HolidaySet) Len() int {
	n := len(hs.fixed)
	for _, days := range hs.recurring {
		n += len(days)
	}
	return n
}

// List returns all holidays, recurring first, each group in date order.
func (hs *HolidaySet) List() []Holiday {
	out := make([]Holiday, 0, hs.Len())
	for month, days := range hs.recurring {
		for day, note := range days {
			out = append(out, Holiday{Month: month, Day: day, Recurring: true, Note: note})
		}
	}
	for d, note := range hs.fixed {
		out = append(out, Holiday{Year: d.Year, Month: d.Month, Day: d.Day, Note: note})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Recurring != b.Recurring {
			return a.Recurring
		}
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		return a.Day < b.Day
	})
	return out
}

func (hs *HolidaySet) clone() *HolidaySet {
	out := NewHolidaySet()
	for d, note := range hs.fixed {
		out.fixed[d] = note
	}
	for month, days := range hs.recurring {
		copied := make(map[int]string, len(days))
		for day, note := range days {
			copied[day] = note
		}
		out.recurring[month] = copied
	}
	return out
}
