package verify

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/username/workday-calendar/internal/calendar"
	"github.com/username/workday-calendar/pkg/dateutil"
	"github.com/username/workday-calendar/pkg/random"
)

// Options controls a verification run
type Options struct {
	Iterations int
	Seed       int64
	From       time.Time     // earliest start time
	Span       time.Duration // range of start times after From
	MaxDays    int           // largest whole-day amount generated
}

// Violation describes one failed check
type Violation struct {
	Check  string
	Start  time.Time
	Amount decimal.Decimal
	Result time.Time
	Detail string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: start %s amount %s -> %s (%s)",
		v.Check, dateutil.FormatDisplay(v.Start), v.Amount, dateutil.FormatDisplay(v.Result), v.Detail)
}

// Report summarizes a verification run
type Report struct {
	Queries    int
	Violations []Violation
	Duration   time.Duration
}

// OK reports whether every check passed
func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

// Run issues random increment queries against cal and checks that every
// result lies inside the working window on a workday, and that a larger
// amount of the same sign never moves the result the other way.
func Run(cal calendar.Calendar, opts Options, logger *zap.Logger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	wh, ok := cal.WorkingHours()
	if !ok {
		return nil, calendar.ErrNotConfigured
	}
	if opts.Iterations <= 0 {
		return nil, fmt.Errorf("iterations must be positive, got %d", opts.Iterations)
	}
	if opts.MaxDays <= 0 {
		opts.MaxDays = 30
	}

	began := time.Now()
	src := random.New(opts.Seed)
	report := &Report{}
	epsilon := decimal.New(1, -6)

	logger.Info("Starting verification",
		zap.Int("iterations", opts.Iterations),
		zap.Int64("seed", opts.Seed),
		zap.Stringer("working_hours", wh))

	for i := 0; i < opts.Iterations; i++ {
		start := src.Time(opts.From, opts.Span)
		small := src.SignedAmount(opts.MaxDays, 6)
		extra := src.Amount(opts.MaxDays/4+1, 6)
		if small.IsNegative() {
			small, extra = small.Sub(epsilon), extra.Neg()
		} else {
			small = small.Add(epsilon)
		}
		large := small.Add(extra)

		r1, err := cal.Increment(start, small)
		if err != nil {
			return nil, fmt.Errorf("increment %s by %s: %w", start, small, err)
		}
		r2, err := cal.Increment(start, large)
		if err != nil {
			return nil, fmt.Errorf("increment %s by %s: %w", start, large, err)
		}
		report.Queries += 2

		report.Violations = append(report.Violations, checkResult(cal, wh, start, small, r1)...)
		report.Violations = append(report.Violations, checkResult(cal, wh, start, large, r2)...)

		if (small.IsPositive() && r2.Before(r1)) || (small.IsNegative() && r2.After(r1)) {
			report.Violations = append(report.Violations, Violation{
				Check:  "monotonic",
				Start:  start,
				Amount: large,
				Result: r2,
				Detail: fmt.Sprintf("smaller amount %s gave %s", small, dateutil.FormatDisplay(r1)),
			})
		}
	}

	report.Duration = time.Since(began)

	logger.Info("Verification finished",
		zap.Int("queries", report.Queries),
		zap.Int("violations", len(report.Violations)),
		zap.Duration("duration", report.Duration))

	return report, nil
}

func checkResult(cal calendar.Calendar, wh calendar.WorkingHours, start time.Time, amount decimal.Decimal, result time.Time) []Violation {
	var out []Violation

	if !wh.Contains(dateutil.MinuteOfDay(result)) {
		out = append(out, Violation{
			Check: "window", Start: start, Amount: amount, Result: result,
			Detail: "outside " + wh.String(),
		})
	}

	if info := cal.GetDayInfo(result); !info.IsWorkday {
		out = append(out, Violation{
			Check: "workday", Start: start, Amount: amount, Result: result,
			Detail: "lands on " + info.Type.String(),
		})
	}

	return out
}
