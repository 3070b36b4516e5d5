package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RoundingMode specifies how excess fraction digits are discarded.
// The zero value is [HalfEven].
type RoundingMode uint8

const (
	// HalfEven rounds to the nearest neighbor, and ties to the even neighbor.
	// It is also known as banker's rounding and is the default mode.
	HalfEven RoundingMode = iota
	// HalfUp rounds to the nearest neighbor, and ties away from zero.
	HalfUp
	// HalfDown rounds to the nearest neighbor, and ties toward zero.
	HalfDown
	// Up rounds away from zero.
	Up
	// Down rounds toward zero (truncation).
	Down
	// Ceiling rounds toward positive infinity.
	Ceiling
	// Floor rounds toward negative infinity.
	Floor
)

var modeNames = [...]string{
	HalfEven: "HalfEven",
	HalfUp:   "HalfUp",
	HalfDown: "HalfDown",
	Up:       "Up",
	Down:     "Down",
	Ceiling:  "Ceiling",
	Floor:    "Floor",
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m RoundingMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("RoundingMode(%d)", uint8(m))
}

// round returns d with exactly scale digits after the decimal point.
// Digits are discarded according to the mode; missing digits are zero-padded.
//
// round panics if the mode is not one of the declared constants.
func (m RoundingMode) round(d decimal.Decimal, scale int32) decimal.Decimal {
	var r decimal.Decimal
	switch m {
	case HalfEven:
		r = d.RoundBank(scale)
	case HalfUp:
		r = d.Round(scale)
	case HalfDown:
		r = roundHalfDown(d, scale)
	case Up:
		r = d.RoundUp(scale)
	case Down:
		r = d.RoundDown(scale)
	case Ceiling:
		r = d.RoundCeil(scale)
	case Floor:
		r = d.RoundFloor(scale)
	default:
		panic(fmt.Sprintf("rounding %v: unknown %v", d, m))
	}
	// r has at most scale fraction digits, so Round only pads it.
	return r.Round(scale)
}

func roundHalfDown(d decimal.Decimal, scale int32) decimal.Decimal {
	t := d.RoundDown(scale)
	half := decimal.New(5, -scale-1)
	if d.Sub(t).Abs().GreaterThan(half) {
		return d.RoundUp(scale)
	}
	return t
}

// scaleOf returns the number of digits after the decimal point of d.
func scaleOf(d decimal.Decimal) int {
	return -int(d.Exponent())
}
