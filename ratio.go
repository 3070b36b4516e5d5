package money

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Ratio represents an exact fraction.
// Conversion to a decimal, and therefore rounding, is deferred until
// [Ratio.Decimal] is called, so chains of multiplications do not
// accumulate rounding errors.
// The zero value is 0.
// Ratio is immutable and safe for concurrent use by multiple goroutines.
type Ratio struct {
	rat *big.Rat // never mutated after construction; nil means 0
}

// NewRatio returns the ratio num / den.
//
// NewRatio returns an error wrapping [ErrDivisionByZero] if den is 0.
func NewRatio(num, den int64) (Ratio, error) {
	if den == 0 {
		return Ratio{}, fmt.Errorf("computing [%v / %v]: %w", num, den, ErrDivisionByZero)
	}
	return Ratio{rat: big.NewRat(num, den)}, nil
}

// MustNewRatio is like [NewRatio] but panics if the ratio cannot be constructed.
func MustNewRatio(num, den int64) Ratio {
	r, err := NewRatio(num, den)
	if err != nil {
		panic(fmt.Sprintf("NewRatio(%v, %v) failed: %v", num, den, err))
	}
	return r
}

// RatioFromDecimal returns the ratio exactly equal to d.
func RatioFromDecimal(d decimal.Decimal) Ratio {
	return Ratio{rat: d.Rat()}
}

// quoRatio returns the exact ratio d / e.
// e must not be zero.
func quoRatio(d, e decimal.Decimal) Ratio {
	return Ratio{rat: new(big.Rat).Quo(d.Rat(), e.Rat())}
}

func (r Ratio) value() *big.Rat {
	if r.rat == nil {
		return new(big.Rat)
	}
	return r.rat
}

// Rat returns a copy of the ratio as a [big.Rat].
func (r Ratio) Rat() *big.Rat {
	return new(big.Rat).Set(r.value())
}

// Mul returns the exact product of ratio r and decimal d.
func (r Ratio) Mul(d decimal.Decimal) Ratio {
	return Ratio{rat: new(big.Rat).Mul(r.value(), d.Rat())}
}

// Sign returns:
//
//	-1 if r < 0
//	 0 if r = 0
//	+1 if r > 0
func (r Ratio) Sign() int {
	return r.value().Sign()
}

// IsZero returns true if r = 0.
func (r Ratio) IsZero() bool {
	return r.Sign() == 0
}

// Equal returns true if both ratios represent the same fraction.
func (r Ratio) Equal(q Ratio) bool {
	return r.value().Cmp(q.value()) == 0
}

// Decimal returns the ratio as a decimal with exactly scale digits after
// the decimal point, rounded using the given mode.
// Rounding is applied once, to the exact value of the fraction.
func (r Ratio) Decimal(scale int32, mode RoundingMode) decimal.Decimal {
	v := r.value()
	num := decimal.NewFromBigInt(v.Num(), 0)
	den := decimal.NewFromBigInt(v.Denom(), 0) // always positive

	// q is num / den truncated toward zero, and |rem| < den * 10^(-scale).
	q, rem := num.QuoRem(den, scale)
	if rem.IsZero() {
		return mode.round(q, scale)
	}

	// The discarded part lies strictly between 0 and one unit in the last
	// place. Replace it by a short stand-in that falls on the same side of
	// the midpoint, so that the mode rounds q exactly as it would round the
	// exact fraction.
	var frac int64
	switch rem.Abs().Add(rem.Abs()).Cmp(den.Shift(-scale)) {
	case -1:
		frac = 25
	case 0:
		frac = 50
	default:
		frac = 75
	}
	if v.Sign() < 0 {
		frac = -frac
	}
	return mode.round(q.Add(decimal.New(frac, -scale-2)), scale)
}

// String implements the [fmt.Stringer] interface and returns the ratio
// in the form "num/den".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Ratio) String() string {
	return r.value().String()
}
