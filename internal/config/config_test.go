package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/username/workday-calendar/internal/calendar"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
working_hours:
  start: "08:00"
  end: "16:00"
holidays:
  fixed: ["2004-05-27"]
  recurring: ["05-17"]
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "08:00", cfg.WorkingHours.Start)
	assert.Equal(t, "16:00", cfg.WorkingHours.End)
	assert.Equal(t, []string{"2004-05-27"}, cfg.Holidays.Fixed)
	assert.Equal(t, []string{"05-17"}, cfg.Holidays.Recurring)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "holidays:\n  recurring: [\"12-25\"]\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "08:00", cfg.WorkingHours.Start)
	assert.Equal(t, "16:00", cfg.WorkingHours.End)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "working_hours:\n  start: \"08:00\"\n  end: \"16:00\"\n")
	t.Setenv("WORKDAY_WORKING_HOURS_START", "09:30")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "09:30", cfg.WorkingHours.Start)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := &Config{
		WorkingHours: WorkingHoursConfig{Start: "17:00", End: "09:00"},
		Holidays: HolidaysConfig{
			Fixed:     []string{"2004-05-27", "someday"},
			Recurring: []string{"05-17", "May 17"},
		},
		Log: LogConfig{Level: "verbose"},
	}

	err := cfg.Validate()
	require.Error(t, err)

	errs := multierr.Errors(err)
	assert.Len(t, errs, 4)
	assert.ErrorIs(t, err, calendar.ErrInvalidConfiguration)
	assert.ErrorIs(t, err, calendar.ErrInvalidArgument)
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	holidayFile := writeFile(t, dir, "holidays.txt", "2004-06-01 fixed Company Day\n")

	cfg := &Config{
		WorkingHours: WorkingHoursConfig{Start: "08:00", End: "16:00"},
		Holidays: HolidaysConfig{
			Fixed:     []string{"2004-05-27"},
			Recurring: []string{"05-17"},
			File:      holidayFile,
		},
	}

	cal, err := cfg.Build(zap.NewNop())
	require.NoError(t, err)

	wh, ok := cal.WorkingHours()
	require.True(t, ok)
	assert.Equal(t, "08:00-16:00", wh.String())
	assert.True(t, cal.IsHoliday(time.Date(2004, 5, 27, 0, 0, 0, 0, time.UTC)))
	assert.True(t, cal.IsHoliday(time.Date(2011, 5, 17, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Company Day", cal.GetDayInfo(time.Date(2004, 6, 1, 0, 0, 0, 0, time.UTC)).Note)

	got, err := cal.Increment(time.Date(2004, 5, 24, 18, 5, 0, 0, time.UTC), decimal.RequireFromString("-5.5"))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2004, 5, 14, 12, 0, 0, 0, time.UTC), got)
}

func TestBuild_RejectsImpossibleRecurringHoliday(t *testing.T) {
	cfg := &Config{
		WorkingHours: WorkingHoursConfig{Start: "08:00", End: "16:00"},
		Holidays:     HolidaysConfig{Recurring: []string{"02-30"}},
	}

	_, err := cfg.Build(nil)
	require.ErrorIs(t, err, calendar.ErrInvalidArgument)
}
