package random

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// Source generates reproducible random inputs for workday queries
type Source struct {
	rng *rand.Rand
}

// New creates a Source. The same seed yields the same sequence.
func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a value in [0, n)
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Time returns a minute-aligned time in [from, from+span)
func (s *Source) Time(from time.Time, span time.Duration) time.Time {
	minutes := int(span / time.Minute)
	if minutes <= 0 {
		return from
	}
	return from.Add(time.Duration(s.rng.Intn(minutes)) * time.Minute)
}

// Amount returns a non-negative decimal below maxWhole+1 with the given
// number of decimal places.
// Example: Amount(3, 2) returns a value in range [0, 3.99]
func (s *Source) Amount(maxWhole int, places int32) decimal.Decimal {
	scale := int64(1)
	for i := int32(0); i < places; i++ {
		scale *= 10
	}
	units := s.rng.Int63n(int64(maxWhole+1) * scale)
	return decimal.New(units, -places)
}

// Sign returns 1 or -1 with equal probability
func (s *Source) Sign() int {
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// SignedAmount returns Amount with a random sign
func (s *Source) SignedAmount(maxWhole int, places int32) decimal.Decimal {
	amount := s.Amount(maxWhole, places)
	if s.Sign() < 0 {
		return amount.Neg()
	}
	return amount
}
