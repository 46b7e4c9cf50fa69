package calendar

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/username/workday-calendar/pkg/dateutil"
)

// maxSettleDays bounds the search for the nearest workday. A month/day pair
// falls on every weekday within 28 years.
const maxSettleDays = 28 * 366

// MaxIncrementDays is the largest accepted magnitude of an increment amount.
// Larger amounts are rejected rather than stepped day by day.
const MaxIncrementDays = 1_000_000

// Increment shifts start by amount workdays. The integer part of amount is
// a number of whole workdays to step; the fractional part is a share of the
// working-hours window, truncated to whole minutes.
//
// Start is first moved into a working window: before opening it moves to the
// opening (forward) or to the previous day's closing (backward), after
// closing to the next day's opening (forward) or the same day's closing
// (backward). Fractional minutes that run past a window edge continue from
// the opposite edge of the adjacent workday. Amounts of zero or less step
// backward.
//
// A start on a weekend or holiday is settled onto the nearest workday in the
// direction of travel before whole days are stepped, so Saturday 10:00 plus
// one workday gives Tuesday 10:00 rather than Monday 10:00. This keeps results
// monotonic in amount: a larger amount never lands earlier than a smaller one.
//
// Amounts whose magnitude exceeds MaxIncrementDays return ErrInvalidArgument.
func (c *WorkdayCalendar) Increment(start time.Time, amount decimal.Decimal) (time.Time, error) {
	if start.IsZero() {
		return time.Time{}, fmt.Errorf("%w: start time cannot be empty", ErrInvalidArgument)
	}
	if !c.hoursSet {
		return time.Time{}, fmt.Errorf("%w: set working hours before calculating increments", ErrNotConfigured)
	}
	if err := c.hours.Validate(); err != nil {
		return time.Time{}, err
	}

	forward := amount.IsPositive()
	magnitude := amount.Abs()
	if magnitude.GreaterThan(decimal.NewFromInt(MaxIncrementDays)) {
		return time.Time{}, fmt.Errorf("%w: amount %s exceeds %d workdays", ErrInvalidArgument, amount, MaxIncrementDays)
	}
	wholeDays := magnitude.IntPart()
	fraction := magnitude.Sub(decimal.NewFromInt(wholeDays))
	offset := int(decimal.NewFromInt(int64(c.hours.Minutes())).Mul(fraction).IntPart())

	day, minute := c.clamp(start, forward)
	day, err := c.settle(day, forward)
	if err != nil {
		return time.Time{}, err
	}

	day, minute, err = c.addMinutes(day, minute, offset, forward)
	if err != nil {
		return time.Time{}, err
	}

	step := 1
	if !forward {
		step = -1
	}
	for i := int64(0); i < wholeDays; i++ {
		day, err = c.settle(day.AddDate(0, 0, step), forward)
		if err != nil {
			return time.Time{}, err
		}
	}

	result := dateutil.AtMinute(day, minute)
	c.logger.Debug("Workday increment calculated",
		zap.Time("start", start),
		zap.Stringer("amount", amount),
		zap.Int64("whole_days", wholeDays),
		zap.Int("fraction_minutes", offset),
		zap.Time("result", result))

	return result, nil
}

// clamp moves start into the working window of the direction's side and
// returns the day (at midnight) and minute-of-day.
func (c *WorkdayCalendar) clamp(start time.Time, forward bool) (time.Time, int) {
	day := dateutil.StartOfDay(start)
	minute := dateutil.MinuteOfDay(start)

	switch {
	case minute < c.hours.Start:
		if forward {
			return day, c.hours.Start
		}
		return day.AddDate(0, 0, -1), c.hours.End
	case minute > c.hours.End:
		if forward {
			return day.AddDate(0, 0, 1), c.hours.Start
		}
		return day, c.hours.End
	}
	return day, minute
}

// addMinutes moves minute by offset within the window. Overflow continues
// from the opposite edge of the adjacent workday; offset is always shorter
// than the window, so one carry is enough.
func (c *WorkdayCalendar) addMinutes(day time.Time, minute, offset int, forward bool) (time.Time, int, error) {
	if forward {
		minute += offset
		if minute <= c.hours.End {
			return day, minute, nil
		}
		minute = c.hours.Start + (minute - c.hours.End)
		next, err := c.settle(day.AddDate(0, 0, 1), true)
		return next, minute, err
	}

	minute -= offset
	if minute >= c.hours.Start {
		return day, minute, nil
	}
	minute = c.hours.End - (c.hours.Start - minute)
	prev, err := c.settle(day.AddDate(0, 0, -1), false)
	return prev, minute, err
}

// settle moves day to the nearest workday in the given direction, re-checking
// after every shift until an ordinary workday is reached.
func (c *WorkdayCalendar) settle(day time.Time, forward bool) (time.Time, error) {
	from := day
	for travelled := 0; travelled <= maxSettleDays; {
		delta := shift(c.Classify(day), forward)
		if delta == 0 {
			return day, nil
		}
		day = day.AddDate(0, 0, delta)
		if delta < 0 {
			delta = -delta
		}
		travelled += delta
	}
	return time.Time{}, fmt.Errorf("%w: no workday within %d days of %s",
		ErrInvalidConfiguration, maxSettleDays, from.Format("2006-01-02"))
}

// shift returns the number of days to move off a day of the given type.
func shift(t DayType, forward bool) int {
	switch t {
	case DayTypeSaturday:
		if forward {
			return 2
		}
		return -1
	case DayTypeSunday:
		if forward {
			return 1
		}
		return -2
	case DayTypeHoliday:
		if forward {
			return 1
		}
		return -1
	default:
		return 0
	}
}
