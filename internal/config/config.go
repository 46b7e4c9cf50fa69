package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/username/workday-calendar/internal/calendar"
	"github.com/username/workday-calendar/pkg/dateutil"
)

// Config represents application configuration
type Config struct {
	WorkingHours WorkingHoursConfig `mapstructure:"working_hours"`
	Holidays     HolidaysConfig     `mapstructure:"holidays"`
	Log          LogConfig          `mapstructure:"log"`
}

// WorkingHoursConfig represents the daily working window ("HH:MM")
type WorkingHoursConfig struct {
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`
}

// HolidaysConfig represents holiday registration
type HolidaysConfig struct {
	Fixed     []string `mapstructure:"fixed"`     // YYYY-MM-DD
	Recurring []string `mapstructure:"recurring"` // MM-DD
	File      string   `mapstructure:"file"`      // optional holiday list, see calendar.LoadHolidayFile
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.workday-calendar")
		v.AddConfigPath("/etc/workday-calendar")
	}

	v.SetDefault("working_hours.start", "08:00")
	v.SetDefault("working_hours.end", "16:00")
	v.SetDefault("log.level", "info")

	// Read environment variables, e.g. WORKDAY_WORKING_HOURS_START
	v.SetEnvPrefix("workday")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration and reports every problem found
func (c *Config) Validate() error {
	var errs error

	if _, err := calendar.ParseWorkingHours(c.WorkingHours.Start, c.WorkingHours.End); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("working_hours: %w", err))
	}

	for _, value := range c.Holidays.Fixed {
		if _, err := dateutil.ParseDate(value); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("holidays.fixed: %w", err))
		}
	}

	for _, value := range c.Holidays.Recurring {
		if _, _, err := calendar.ParseMonthDay(value); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("holidays.recurring: %w", err))
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		errs = multierr.Append(errs, fmt.Errorf("log.level must be debug, info, warn or error, got '%s'", c.Log.Level))
	}

	return errs
}

// Build creates a calendar configured with the working hours and holidays.
// All values go through the calendar setters, so their validation applies.
func (c *Config) Build(logger *zap.Logger) (*calendar.WorkdayCalendar, error) {
	cal := calendar.NewWorkdayCalendar(logger)

	wh, err := calendar.ParseWorkingHours(c.WorkingHours.Start, c.WorkingHours.End)
	if err != nil {
		return nil, fmt.Errorf("working_hours: %w", err)
	}
	if err := cal.SetWorkingHours(wh.Start/60, wh.Start%60, wh.End/60, wh.End%60); err != nil {
		return nil, fmt.Errorf("working_hours: %w", err)
	}

	for _, value := range c.Holidays.Fixed {
		date, err := dateutil.ParseDate(value)
		if err != nil {
			return nil, fmt.Errorf("holidays.fixed: %w", err)
		}
		if err := cal.AddFixedHoliday(date); err != nil {
			return nil, fmt.Errorf("holidays.fixed %s: %w", value, err)
		}
	}

	for _, value := range c.Holidays.Recurring {
		month, day, err := calendar.ParseMonthDay(value)
		if err != nil {
			return nil, fmt.Errorf("holidays.recurring: %w", err)
		}
		if err := cal.AddRecurringHoliday(month, day); err != nil {
			return nil, fmt.Errorf("holidays.recurring %s: %w", value, err)
		}
	}

	if c.Holidays.File != "" {
		if _, err := calendar.LoadHolidayFile(cal, c.Holidays.File, logger); err != nil {
			return nil, err
		}
	}

	return cal, nil
}
