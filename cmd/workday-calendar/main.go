package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/workday-calendar/internal/calendar"
	"github.com/username/workday-calendar/internal/config"
	"github.com/username/workday-calendar/internal/verify"
	"github.com/username/workday-calendar/pkg/dateutil"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "workday-calendar",
		Short: "Workday calendar calculator",
		Long:  "Add or subtract fractional workdays to a date, honoring working hours, weekends and holidays",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger(cfg.Log.Level) // Fallback to console
				}
			} else if err == nil {
				initLogger(cfg.Log.Level)
			} else {
				initLogger("warn") // No config yet, keep the console quiet
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: search ., $HOME/.workday-calendar, /etc/workday-calendar)")

	rootCmd.AddCommand(incrementCmd())
	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(holidaysCmd())
	rootCmd.AddCommand(demoCmd())
	rootCmd.AddCommand(verifyCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func incrementCmd() *cobra.Command {
	var startStr, amountStr string

	cmd := &cobra.Command{
		Use:     "increment",
		Short:   "Shift a start time by a number of workdays",
		Example: "  workday-calendar increment --start '2004-05-24 18:05' --amount -5.5",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := dateutil.ParseDateTime(startStr, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --start: %w", err)
			}
			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("invalid --amount: %w", err)
			}

			cal, err := loadCalendar()
			if err != nil {
				return err
			}

			result, err := cal.Increment(start, amount)
			if err != nil {
				return fmt.Errorf("failed to calculate increment: %w", err)
			}

			printIncrement(cmd.OutOrStdout(), start, amount, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&startStr, "start", "", "Start date and time, e.g. '2004-05-24 18:05'")
	cmd.Flags().StringVar(&amountStr, "amount", "", "Signed decimal number of workdays, e.g. -5.5")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [date...]",
		Short: "Show whether dates are workdays (default: today)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := loadCalendar()
			if err != nil {
				return err
			}

			dates := []time.Time{dateutil.Today()}
			if len(args) > 0 {
				dates = dates[:0]
				for _, arg := range args {
					date, err := dateutil.ParseDate(arg)
					if err != nil {
						return err
					}
					dates = append(dates, date)
				}
			}

			out := cmd.OutOrStdout()
			for _, date := range dates {
				info := cal.GetDayInfo(date)
				fmt.Fprintf(out, "%s %s %s", info.Date.Format("2006-01-02"), info.Date.Format("Mon"), info.Type)
				if info.Note != "" {
					fmt.Fprintf(out, " (%s)", info.Note)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	return cmd
}

func holidaysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "List the configured holidays",
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := loadCalendar()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			holidays := cal.Holidays()
			if len(holidays) == 0 {
				fmt.Fprintln(out, "No holidays configured")
				return nil
			}
			for _, h := range holidays {
				kind := "fixed"
				if h.Recurring {
					kind = "recurring"
				}
				fmt.Fprintf(out, "%-10s %s", h, kind)
				if h.Note != "" {
					fmt.Fprintf(out, " (%s)", h.Note)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	return cmd
}

// demoScenario is one of the reference increments printed by the demo command
type demoScenario struct {
	start  time.Time
	amount string
}

func demoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the reference scenarios (08:00-16:00, May 17 recurring, 2004-05-27 fixed)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cal := calendar.NewWorkdayCalendar(logger)
			if err := cal.SetWorkingHours(8, 0, 16, 0); err != nil {
				return err
			}
			if err := cal.AddRecurringHoliday(5, 17); err != nil {
				return err
			}
			if err := cal.AddFixedHoliday(time.Date(2004, 5, 27, 0, 0, 0, 0, time.Local)); err != nil {
				return err
			}

			scenarios := []demoScenario{
				{time.Date(2004, 5, 24, 18, 5, 0, 0, time.Local), "-5.5"},
				{time.Date(2004, 5, 24, 19, 3, 0, 0, time.Local), "44.723656"},
				{time.Date(2004, 5, 24, 18, 3, 0, 0, time.Local), "-6.7470217"},
				{time.Date(2004, 5, 24, 8, 3, 0, 0, time.Local), "12.782709"},
				{time.Date(2004, 5, 24, 7, 3, 0, 0, time.Local), "8.276628"},
			}

			for _, sc := range scenarios {
				amount := decimal.RequireFromString(sc.amount)
				result, err := cal.Increment(sc.start, amount)
				if err != nil {
					return err
				}
				printIncrement(cmd.OutOrStdout(), sc.start, amount, result)
			}
			return nil
		},
	}

	return cmd
}

func verifyCmd() *cobra.Command {
	var opts verify.Options
	var fromStr string
	var spanDays int

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the configured calendar against random increments",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := dateutil.ParseDateTime(fromStr, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --from: %w", err)
			}
			opts.From = from
			opts.Span = time.Duration(spanDays) * 24 * time.Hour

			cal, err := loadCalendar()
			if err != nil {
				return err
			}

			report, err := verify.Run(cal, opts, logger)
			if err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Checked %d increments in %s\n", report.Queries, report.Duration.Round(time.Millisecond))
			for _, v := range report.Violations {
				fmt.Fprintf(out, "  %s\n", v)
			}
			if !report.OK() {
				return fmt.Errorf("%d violation(s) found", len(report.Violations))
			}
			fmt.Fprintln(out, "All checks passed")
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Iterations, "iterations", 1000, "Number of random start/amount pairs")
	cmd.Flags().Int64Var(&opts.Seed, "seed", time.Now().UnixNano(), "Random seed")
	cmd.Flags().IntVar(&opts.MaxDays, "max-days", 30, "Largest whole-day amount")
	cmd.Flags().StringVar(&fromStr, "from", "2004-01-01", "Earliest start date")
	cmd.Flags().IntVar(&spanDays, "span-days", 730, "Range of start dates in days")

	return cmd
}

func loadCalendar() (*calendar.WorkdayCalendar, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cal, err := cfg.Build(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build calendar: %w", err)
	}
	return cal, nil
}

func printIncrement(w io.Writer, start time.Time, amount decimal.Decimal, result time.Time) {
	fmt.Fprintf(w, "%s with an addition of %s work days is %s\n",
		dateutil.FormatDisplay(start), amount, dateutil.FormatDisplay(result))
}

func initLogger(level string) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	// Keep stdout for command output
	config.OutputPaths = []string{"stderr"}

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,  // Keep max 3 old log files
		MaxAge:     28, // days
		Compress:   true,
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
