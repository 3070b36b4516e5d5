package money

import (
	"fmt"

	fixed "github.com/govalues/decimal"
	"github.com/shopspring/decimal"
)

// NewFromFixed converts a fixed-precision [decimal.Decimal] from the
// [govalues/decimal] package to money.
// If the decimal has fewer digits after the decimal point than the
// currency, it is zero-padded to the right.
//
// NewFromFixed returns an error if:
//   - the decimal has more digits after the decimal point than the currency,
//     the error wraps [ErrInvariantViolation];
//   - the decimal cannot be padded to the scale of the currency without
//     exceeding the fixed precision.
//
// [govalues/decimal]: https://pkg.go.dev/github.com/govalues/decimal
// [decimal.Decimal]: https://pkg.go.dev/github.com/govalues/decimal#Decimal
func NewFromFixed(curr Currency, d fixed.Decimal) (Money, error) {
	if d.Scale() < curr.Scale() {
		d = d.Pad(curr.Scale())
		if d.Scale() < curr.Scale() {
			return Money{}, fmt.Errorf("padding %v to %v: coefficient overflow", d, curr)
		}
	}
	e, err := decimal.NewFromString(d.String())
	if err != nil {
		return Money{}, fmt.Errorf("converting %v: %w", d, err)
	}
	return New(e, curr)
}

// Fixed returns the amount as a fixed-precision decimal from the
// [govalues/decimal] package, keeping the scale of the currency.
//
// Fixed returns an error if the amount has more than [fixed.MaxPrec]
// digits.
//
// [govalues/decimal]: https://pkg.go.dev/github.com/govalues/decimal
func (a Money) Fixed() (fixed.Decimal, error) {
	d, err := fixed.Parse(a.amountString())
	if err != nil {
		return fixed.Decimal{}, fmt.Errorf("converting %v: %w", a, err)
	}
	// Parse silently drops fraction digits that do not fit.
	if d.Scale() != a.curr.Scale() {
		return fixed.Decimal{}, fmt.Errorf("converting %v: too many digits for %T", a, d)
	}
	return d, nil
}
