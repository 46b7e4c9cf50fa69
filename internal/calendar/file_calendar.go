package calendar

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/username/workday-calendar/pkg/dateutil"
)

// HolidayFileStats summarizes a loaded holiday file
type HolidayFileStats struct {
	Fixed     int
	Recurring int
	Skipped   int
}

// LoadHolidayFile registers the holidays listed in a text file with cal.
//
// Format, one holiday per line:
//
//	# comment
//	2004-05-27 fixed Ascension Day
//	05-17 recurring Constitution Day
//
// Lines that cannot be parsed are logged and skipped.
func LoadHolidayFile(cal *WorkdayCalendar, filePath string, logger *zap.Logger) (*HolidayFileStats, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open holiday file: %w", err)
	}
	defer file.Close()

	stats, err := ReadHolidays(cal, file, logger)
	if err != nil {
		return nil, fmt.Errorf("error reading holiday file %s: %w", filePath, err)
	}

	logger.Info("Holiday file loaded",
		zap.String("file", filePath),
		zap.Int("fixed", stats.Fixed),
		zap.Int("recurring", stats.Recurring),
		zap.Int("skipped", stats.Skipped))

	return stats, nil
}

// ReadHolidays is LoadHolidayFile for an already opened reader.
func ReadHolidays(cal *WorkdayCalendar, r io.Reader, logger *zap.Logger) (*HolidayFileStats, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	stats := &HolidayFileStats{}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Format: DATE type [note]
		parts := strings.Fields(line)
		if len(parts) < 2 {
			logger.Warn("Invalid line format", zap.Int("line", lineNo), zap.String("text", line))
			stats.Skipped++
			continue
		}
		note := ""
		if len(parts) > 2 {
			note = strings.Join(parts[2:], " ")
		}

		switch parts[1] {
		case "fixed":
			date, err := dateutil.ParseDate(parts[0])
			if err != nil {
				logger.Warn("Failed to parse date", zap.Int("line", lineNo), zap.String("date", parts[0]), zap.Error(err))
				stats.Skipped++
				continue
			}
			if err := cal.addFixedHoliday(date, note); err != nil {
				logger.Warn("Rejected fixed holiday", zap.Int("line", lineNo), zap.Error(err))
				stats.Skipped++
				continue
			}
			stats.Fixed++

		case "recurring":
			month, day, err := ParseMonthDay(parts[0])
			if err == nil {
				err = cal.addRecurringHoliday(month, day, note)
			}
			if err != nil {
				logger.Warn("Rejected recurring holiday", zap.Int("line", lineNo), zap.String("date", parts[0]), zap.Error(err))
				stats.Skipped++
				continue
			}
			stats.Recurring++

		default:
			logger.Warn("Unknown holiday type", zap.Int("line", lineNo), zap.String("type", parts[1]))
			stats.Skipped++
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}

// ParseMonthDay parses a recurring holiday in "MM-DD" form. Only the format
// is checked here; range checks happen when the holiday is registered.
func ParseMonthDay(s string) (month, day int, err error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: recurring date %q, expected MM-DD", ErrInvalidArgument, s)
	}
	if month, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, fmt.Errorf("%w: month in %q", ErrInvalidArgument, s)
	}
	if day, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: day in %q", ErrInvalidArgument, s)
	}
	return month, day, nil
}
