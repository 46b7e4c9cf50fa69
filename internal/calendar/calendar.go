package calendar

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/username/workday-calendar/pkg/dateutil"
)

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeSaturday
	DayTypeSunday
	DayTypeHoliday
)

func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeSaturday:
		return "saturday"
	case DayTypeSunday:
		return "sunday"
	case DayTypeHoliday:
		return "holiday"
	default:
		return fmt.Sprintf("DayType(%d)", int(t))
	}
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date      time.Time
	Type      DayType
	IsWorkday bool
	Note      string
}

// Calendar interface for workday queries
type Calendar interface {
	// IsWorkday checks if the given date is a working day
	IsWorkday(date time.Time) bool

	// GetDayInfo returns detailed info for a specific day
	GetDayInfo(date time.Time) DayInfo

	// WorkingHours returns the configured window, false if unset
	WorkingHours() (WorkingHours, bool)

	// Increment shifts start by a signed, fractional number of workdays
	Increment(start time.Time, amount decimal.Decimal) (time.Time, error)
}

// WorkdayCalendar holds the working-hours window and the holidays, and
// computes workday increments against them.
//
// Setters are not synchronized. Configure the calendar from a single
// goroutine, then query it concurrently; Snapshot gives an independent copy
// when configuration has to keep changing while queries run.
type WorkdayCalendar struct {
	hours    WorkingHours
	hoursSet bool
	holidays *HolidaySet
	logger   *zap.Logger
}

var _ Calendar = (*WorkdayCalendar)(nil)

// NewWorkdayCalendar creates an unconfigured calendar. A nil logger disables logging.
func NewWorkdayCalendar(logger *zap.Logger) *WorkdayCalendar {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkdayCalendar{
		holidays: NewHolidaySet(),
		logger:   logger,
	}
}

// SetWorkingHours replaces the working-hours window. On error the previous
// window is kept.
func (c *WorkdayCalendar) SetWorkingHours(startHour, startMinute, endHour, endMinute int) error {
	wh, err := NewWorkingHours(startHour, startMinute, endHour, endMinute)
	if err != nil {
		return err
	}
	c.hours = wh
	c.hoursSet = true

	c.logger.Info("Working hours set", zap.Stringer("window", wh))
	return nil
}

// WorkingHours returns the configured window
func (c *WorkdayCalendar) WorkingHours() (WorkingHours, bool) {
	return c.hours, c.hoursSet
}

// AddFixedHoliday registers a one-off holiday on the date of t.
func (c *WorkdayCalendar) AddFixedHoliday(date time.Time) error {
	return c.addFixedHoliday(date, "")
}

// AddRecurringHoliday registers a holiday repeating every year on month/day.
func (c *WorkdayCalendar) AddRecurringHoliday(month, day int) error {
	return c.addRecurringHoliday(month, day, "")
}

func (c *WorkdayCalendar) addFixedHoliday(date time.Time, note string) error {
	if err := c.holidays.AddFixed(date, note); err != nil {
		return err
	}
	c.logger.Info("Fixed holiday added",
		zap.String("date", date.Format("2006-01-02")),
		zap.String("note", note))
	return nil
}

func (c *WorkdayCalendar) addRecurringHoliday(month, day int, note string) error {
	if err := c.holidays.AddRecurring(month, day, note); err != nil {
		return err
	}
	c.logger.Info("Recurring holiday added",
		zap.Int("month", month),
		zap.Int("day", day),
		zap.String("note", note))
	return nil
}

// IsHoliday reports whether the date of t is a fixed or recurring holiday.
func (c *WorkdayCalendar) IsHoliday(date time.Time) bool {
	return c.holidays.Contains(date)
}

// Holidays returns every registered holiday
func (c *WorkdayCalendar) Holidays() []Holiday {
	return c.holidays.List()
}

// Classify returns the type of the date of t. Weekends take precedence over
// holidays falling on them.
func (c *WorkdayCalendar) Classify(date time.Time) DayType {
	if dateutil.IsWeekend(date) {
		if date.Weekday() == time.Saturday {
			return DayTypeSaturday
		}
		return DayTypeSunday
	}
	if c.holidays.Contains(date) {
		return DayTypeHoliday
	}
	return DayTypeWorkday
}

// IsWorkday checks if the given date is a working day
func (c *WorkdayCalendar) IsWorkday(date time.Time) bool {
	return c.Classify(date) == DayTypeWorkday
}

// GetDayInfo returns detailed info for a specific day
func (c *WorkdayCalendar) GetDayInfo(date time.Time) DayInfo {
	dayType := c.Classify(date)
	info := DayInfo{
		Date:      time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()),
		Type:      dayType,
		IsWorkday: dayType == DayTypeWorkday,
	}
	if note, ok := c.holidays.Lookup(date); ok {
		info.Note = note
	}
	return info
}

// Snapshot returns a deep copy of the calendar sharing only the logger.
func (c *WorkdayCalendar) Snapshot() *WorkdayCalendar {
	return &WorkdayCalendar{
		hours:    c.hours,
		hoursSet: c.hoursSet,
		holidays: c.holidays.clone(),
		logger:   c.logger,
	}
}
