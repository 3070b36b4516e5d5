package money

import (
	"fmt"
	"time"
)

// TimeRate represents an amount of money per span of time, such as a salary
// of "$ 5000.00 per 720h0m0s".
// The zero value is not a valid rate; use [Money.Per] to construct one.
// TimeRate is designed to be safe for concurrent use by multiple goroutines.
type TimeRate struct {
	amount Money         // money accrued during one period
	period time.Duration // always positive
}

// Per returns the rate of amount a per the given duration.
//
// Per returns an error if the duration is not positive.
func (a Money) Per(d time.Duration) (TimeRate, error) {
	if d <= 0 {
		return TimeRate{}, fmt.Errorf("computing [%v per %v]: duration must be positive", a, d)
	}
	return TimeRate{amount: a, period: d}, nil
}

// Money returns the amount accrued during one period.
func (r TimeRate) Money() Money {
	return r.amount
}

// Duration returns the period of the rate.
func (r TimeRate) Duration() time.Duration {
	return r.period
}

// String implements the [fmt.Stringer] interface and returns a string
// such as "$ 10.00 per 1h0m0s".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r TimeRate) String() string {
	return fmt.Sprintf("%v per %v", r.amount, r.period)
}
