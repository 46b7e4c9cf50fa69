package calendar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleHolidays = `# Reference holidays
2004-05-27 fixed Ascension Day

05-17 recurring Constitution Day
12-25 recurring
02-30 recurring impossible
2004-13-01 fixed bad month
06-01 weekly unknown type
lonely
`

func TestReadHolidays(t *testing.T) {
	cal := NewWorkdayCalendar(nil)

	stats, err := ReadHolidays(cal, strings.NewReader(sampleHolidays), zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, &HolidayFileStats{Fixed: 1, Recurring: 2, Skipped: 4}, stats)

	info := cal.GetDayInfo(date(2004, 5, 27))
	assert.Equal(t, DayTypeHoliday, info.Type)
	assert.Equal(t, "Ascension Day", info.Note)

	info = cal.GetDayInfo(date(2010, 5, 17))
	assert.Equal(t, DayTypeHoliday, info.Type)
	assert.Equal(t, "Constitution Day", info.Note)

	assert.True(t, cal.IsHoliday(date(2006, 12, 25)))
	assert.False(t, cal.IsHoliday(date(2004, 6, 1)))
}

func TestLoadHolidayFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleHolidays), 0o644))

	cal := NewWorkdayCalendar(nil)
	stats, err := LoadHolidayFile(cal, path, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Fixed+stats.Recurring)
	assert.Len(t, cal.Holidays(), 3)
}

func TestLoadHolidayFile_Missing(t *testing.T) {
	cal := NewWorkdayCalendar(nil)

	_, err := LoadHolidayFile(cal, filepath.Join(t.TempDir(), "missing.txt"), nil)
	require.Error(t, err)
	assert.Empty(t, cal.Holidays())
}

func TestParseMonthDay(t *testing.T) {
	tests := []struct {
		input      string
		month, day int
		wantErr    bool
	}{
		{"05-17", 5, 17, false},
		{"2-29", 2, 29, false},
		{"12-25", 12, 25, false},
		{"0517", 0, 0, true},
		{"May-17", 0, 0, true},
		{"05-xx", 0, 0, true},
		{"2004-05-17", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			month, day, err := ParseMonthDay(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.month, month)
			assert.Equal(t, tt.day, day)
		})
	}
}
