package money

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

var (
	// ErrInvariantViolation is returned when the scale of an amount does not
	// match the default number of fraction digits of its currency.
	ErrInvariantViolation = errors.New("scale does not match currency")
	// ErrCurrencyMismatch is returned when an operation requires amounts
	// denominated in the same currency.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrDivisionByZero is returned when dividing by a zero decimal or
	// a zero amount.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrUnknownCurrency is returned when a currency code is not registered.
	ErrUnknownCurrency = errors.New("unknown currency")
)

// MaxExponent is the largest absolute exponent accepted by [ParseMoney].
// Padding an amount to the scale of its currency materializes every digit,
// so larger exponents are rejected before any padding takes place.
const MaxExponent = 1000

// Money represents an exact monetary amount in a particular currency.
// The scale of the amount, i.e. the number of digits after the decimal point,
// always equals [Currency.Scale].
// Its zero value corresponds to "XXX 0", where [XXX] indicates the absence
// of a currency.
//
// Money is immutable: every operation returns a new value.
// It is designed to be safe for concurrent use by multiple goroutines.
// Money values must be compared with [Money.Equal] or [Money.Cmp],
// not with the == operator.
type Money struct {
	curr  Currency
	value decimal.Decimal // scale is always curr.Scale()
}

// New returns money with the given amount and currency.
//
// New returns an error wrapping [ErrInvariantViolation] if the scale of
// the amount is not equal to the scale of the currency.
// No rounding or padding is ever done; see [Adjust] and [AdjustBy] for that.
func New(amount decimal.Decimal, curr Currency) (Money, error) {
	if s := scaleOf(amount); s != curr.Scale() {
		return Money{}, fmt.Errorf("constructing %v %v: scale is %v, want %v: %w", curr, amount, s, curr.Scale(), ErrInvariantViolation)
	}
	return Money{curr: curr, value: amount}, nil
}

// mustNew is like [New] but panics if the amount has a wrong scale.
// It is used for results that are rescaled to the currency beforehand.
func mustNew(amount decimal.Decimal, curr Currency) Money {
	m, err := New(amount, curr)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", amount, curr, err))
	}
	return m
}

// AdjustBy returns money with the amount rescaled to the scale of the
// currency.
// Excess fraction digits are discarded according to the rounding mode,
// missing ones are zero-padded.
// AdjustBy never fails.
func AdjustBy(amount decimal.Decimal, curr Currency, mode RoundingMode) Money {
	return mustNew(mode.round(amount, int32(curr.Scale())), curr)
}

// Adjust is like [AdjustBy] with [HalfEven] rounding.
// If the amount fits into the scale of the currency, it is only zero-padded
// and its value is unchanged.
// The value is rounded only when excess precision must be discarded.
func Adjust(amount decimal.Decimal, curr Currency) Money {
	return AdjustBy(amount, curr, HalfEven)
}

// RoundOffFloat64 converts a binary floating-point number to money.
// Binary floats cannot represent most decimal fractions, so the result
// may round off the value: the float is first converted to the shortest
// decimal that reads back as the same float, and then rescaled to the
// currency using the rounding mode.
// Amounts that must be provably exact should never originate from a float.
//
// RoundOffFloat64 returns an error if the float is a special value (NaN or Inf).
func RoundOffFloat64(amount float64, curr Currency, mode RoundingMode) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, fmt.Errorf("converting float: special value %v", amount)
	}
	return AdjustBy(decimal.NewFromFloat(amount), curr, mode), nil
}

// Zero returns a zero amount in the given currency.
func Zero(curr Currency) Money {
	return Adjust(decimal.Zero, curr)
}

// Dollars returns an amount in US Dollars, see [Adjust].
func Dollars(amount decimal.Decimal) Money {
	return Adjust(amount, USD)
}

// Euros returns an amount in Euros, see [Adjust].
func Euros(amount decimal.Decimal) Money {
	return Adjust(amount, EUR)
}

// Pounds returns an amount in Pounds Sterling, see [Adjust].
func Pounds(amount decimal.Decimal) Money {
	return Adjust(amount, GBP)
}

// Yen returns an amount in Japanese Yen, see [Adjust].
func Yen(amount decimal.Decimal) Money {
	return Adjust(amount, JPY)
}

// ParseMoney converts currency and decimal strings to money.
// If the amount has fewer digits after the decimal point than the currency,
// it is zero-padded to the right.
//
// ParseMoney returns an error if:
//   - the currency code is not registered;
//   - the amount is not a valid decimal;
//   - the exponent of the amount exceeds ±[MaxExponent];
//   - the amount has more digits after the decimal point than the currency.
func ParseMoney(curr, amount string) (Money, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, err
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount: %w", err)
	}
	if e := d.Exponent(); e > MaxExponent || e < -MaxExponent {
		return Money{}, fmt.Errorf("parsing amount %q: exponent %v out of range", amount, e)
	}
	if scaleOf(d) < c.Scale() {
		d = d.Round(int32(c.Scale())) // padding only
	}
	return New(d, c)
}

// MustParseMoney is like [ParseMoney] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding money.
func MustParseMoney(curr, amount string) Money {
	m, err := ParseMoney(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseMoney(%q, %q) failed: %v", curr, amount, err))
	}
	return m
}

// NewFromMinorUnits converts an integer, representing minor units of
// currency (e.g. cents, pennies, fens), to money.
// See also method [Money.MinorUnits].
//
// NewFromMinorUnits returns an error if the currency code is not registered.
func NewFromMinorUnits(curr string, units int64) (Money, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, err
	}
	return New(decimal.New(units, -int32(c.Scale())), c)
}

// MinorUnits returns the amount in minor units of currency
// (e.g. cents, pennies, fens).
// If the result cannot be represented as an int64, then false is returned.
// See also constructor [NewFromMinorUnits].
func (a Money) MinorUnits() (units int64, ok bool) {
	u := a.value.Coefficient()
	if !u.IsInt64() {
		return 0, false
	}
	return u.Int64(), true
}

// RawAmount returns the underlying decimal amount.
//
// RawAmount breaks the encapsulation of Money: it exists for adjacent layers,
// such as persistence or user interfaces, that need the bare number.
// Arithmetic should be done with the methods of Money instead, which keep
// track of the currency and its scale.
func (a Money) RawAmount() decimal.Decimal {
	return a.value
}

// RawCurrency returns the currency of the amount.
//
// Like [Money.RawAmount], it breaks the encapsulation of Money and should
// be used sparingly.
func (a Money) RawCurrency() Currency {
	return a.curr
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Money) Sign() int {
	return a.value.Sign()
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Money) IsNeg() bool {
	return a.value.IsNegative()
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Money) IsPos() bool {
	return a.value.IsPositive()
}

// IsZero returns true if the amount equals the zero of its own currency.
// See also function [Zero].
func (a Money) IsZero() bool {
	return a.Equal(Zero(a.curr))
}

// Abs returns the absolute value of the amount.
func (a Money) Abs() Money {
	return mustNew(a.value.Abs(), a.curr)
}

// Neg returns an amount with the opposite sign.
func (a Money) Neg() Money {
	return mustNew(a.value.Neg(), a.curr)
}

// Equal returns true if amounts have equal values and are denominated in the
// same currency.
// Unlike [Money.Cmp], Equal considers zero amounts in different currencies
// to be different.
func (a Money) Equal(b Money) bool {
	return a.SameCurr(b) && a.value.Equal(b.value)
}

// SameCurr returns true if amounts are denominated in the same currency.
// See also method [Money.ComparableCurr].
func (a Money) SameCurr(b Money) bool {
	return a.curr == b.curr
}

// ComparableCurr returns true if amounts are denominated in the same currency
// or if any of them is zero.
// A zero amount has the same magnitude in every currency, so it can be
// ordered against any amount, see [Money.Cmp].
// This exception applies to ordering and to [Money.Rat] only:
// [Money.Add] and [Money.Sub] always require the same currency.
func (a Money) ComparableCurr(b Money) bool {
	return a.SameCurr(b) || a.value.IsZero() || b.value.IsZero()
}

// Add returns the sum of amounts a and b.
//
// Add returns an error wrapping [ErrCurrencyMismatch] if amounts are
// denominated in different currencies, even if one of them is zero.
func (a Money) Add(b Money) (Money, error) {
	c, err := a.add(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Money) add(b Money) (Money, error) {
	if !a.SameCurr(b) {
		return Money{}, ErrCurrencyMismatch
	}
	return Adjust(a.value.Add(b.value), a.curr), nil
}

// Sub returns the difference between amounts a and b.
//
// Sub returns an error wrapping [ErrCurrencyMismatch] if amounts are
// denominated in different currencies, even if one of them is zero.
func (a Money) Sub(b Money) (Money, error) {
	c, err := a.add(b.Neg())
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return c, nil
}

// Mul returns the product of amount a and factor e, rounded to the scale
// of the currency using [HalfEven] rounding.
// See also method [Money.MulRound].
func (a Money) Mul(e decimal.Decimal) Money {
	return a.MulRound(e, HalfEven)
}

// MulRound returns the product of amount a and factor e, rounded to the
// scale of the currency using the given rounding mode.
// The product is computed exactly before rounding.
func (a Money) MulRound(e decimal.Decimal, mode RoundingMode) Money {
	return AdjustBy(a.value.Mul(e), a.curr, mode)
}

// MulFloat64 is like [Money.MulRound] with a binary floating-point factor.
// The factor is first converted to the shortest decimal that reads back as
// the same float.
//
// MulFloat64 returns an error if the factor is a special value (NaN or Inf).
func (a Money) MulFloat64(f float64, mode RoundingMode) (Money, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Money{}, fmt.Errorf("computing [%v * %v]: special value", a, f)
	}
	return a.MulRound(decimal.NewFromFloat(f), mode), nil
}

// MulInt64 returns the product of amount a and integer factor n.
func (a Money) MulInt64(n int64) Money {
	return a.MulRound(decimal.NewFromInt(n), HalfEven)
}

// Quo returns the quotient of amount a and divisor e, rounded to the scale
// of the currency using [HalfEven] rounding.
// See also methods [Money.QuoRound], [Money.Rat], and [Money.Split].
//
// Quo returns an error wrapping [ErrDivisionByZero] if the divisor is 0.
func (a Money) Quo(e decimal.Decimal) (Money, error) {
	return a.QuoRound(e, HalfEven)
}

// QuoRound returns the quotient of amount a and divisor e, rounded to the
// scale of the currency using the given rounding mode.
// The quotient is rounded once, from its exact value.
//
// QuoRound returns an error wrapping [ErrDivisionByZero] if the divisor is 0.
func (a Money) QuoRound(e decimal.Decimal, mode RoundingMode) (Money, error) {
	if e.IsZero() {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", a, e, ErrDivisionByZero)
	}
	d := quoRatio(a.value, e).Decimal(int32(a.curr.Scale()), mode)
	return mustNew(d, a.curr), nil
}

// Rat returns the exact ratio between amounts a and b.
// No rounding is done; the ratio can later be applied to other amounts
// with [Money.Apply].
//
// Rat returns an error if:
//   - amounts are denominated in different currencies and neither is zero,
//     see [Money.ComparableCurr];
//   - amount b is zero.
func (a Money) Rat(b Money) (Ratio, error) {
	if !a.ComparableCurr(b) {
		return Ratio{}, fmt.Errorf("computing [%v / %v]: %w", a, b, ErrCurrencyMismatch)
	}
	if b.value.IsZero() {
		return Ratio{}, fmt.Errorf("computing [%v / %v]: %w", a, b, ErrDivisionByZero)
	}
	return quoRatio(a.value, b.value), nil
}

// Apply returns the amount multiplied by the ratio and rounded to the scale
// of the currency using the given rounding mode.
// It is the building block for proportional allocation, such as splitting
// a charge across line items.
// See also method [Money.ApplyScale].
func (a Money) Apply(r Ratio, mode RoundingMode) Money {
	return a.ApplyScale(r, int32(a.curr.Scale()), mode)
}

// ApplyScale computes the exact product of the ratio and the amount, rounds
// it to the given scale using the rounding mode, and then adjusts the result
// to the currency using [Adjust].
// A scale greater than the scale of the currency therefore rounds twice.
func (a Money) ApplyScale(r Ratio, scale int32, mode RoundingMode) Money {
	return Adjust(r.Mul(a.value).Decimal(scale, mode), a.curr)
}

// MinIncrement returns the smallest positive amount representable in the
// currency, such as 0.01 for US Dollars or 1 for Japanese Yen.
// See also method [Money.Increment].
func (a Money) MinIncrement() Money {
	return mustNew(decimal.New(1, -int32(a.curr.Scale())), a.curr)
}

// Increment returns the amount increased by [Money.MinIncrement].
func (a Money) Increment() Money {
	b, err := a.Add(a.MinIncrement())
	if err != nil {
		panic(fmt.Sprintf("%v.Increment() failed: %v", a, err))
	}
	return b
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the original amount cannot be divided equally among the specified number
// of parts, the remainder is distributed among the first parts of the slice,
// one minimum increment each.
//
// Split returns an error if the number of parts is not a positive integer.
func (a Money) Split(parts int) ([]Money, error) {
	r, err := a.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", a, parts, err)
	}
	return r, nil
}

func (a Money) split(parts int) ([]Money, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("number of parts must be positive")
	}

	// Quotient
	quo, err := a.QuoRound(decimal.NewFromInt(int64(parts)), Down)
	if err != nil {
		return nil, err
	}

	// Remainder
	rem, err := a.Sub(quo.MulInt64(int64(parts)))
	if err != nil {
		return nil, err
	}
	ulp := a.MinIncrement()
	if rem.IsNeg() {
		ulp = ulp.Neg()
	}

	res := make([]Money, parts)
	for i := range res {
		res[i] = quo
		if rem.value.IsZero() {
			continue
		}
		if res[i], err = res[i].Add(ulp); err != nil {
			return nil, err
		}
		if rem, err = rem.Sub(ulp); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// A zero amount is comparable with an amount in any currency, so
// comparing "USD 0" with "JPY 0" reports 0 even though the amounts are not
// [Money.Equal].
//
// Cmp returns an error wrapping [ErrCurrencyMismatch] if amounts are
// denominated in different currencies and neither of them is zero.
func (a Money) Cmp(b Money) (int, error) {
	if !a.ComparableCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, ErrCurrencyMismatch)
	}
	return a.value.Cmp(b.value), nil
}

// Greater returns true if a > b.
// It fails under the same conditions as [Money.Cmp].
func (a Money) Greater(b Money) (bool, error) {
	c, err := a.Cmp(b)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// Less returns true if a < b.
// It fails under the same conditions as [Money.Cmp].
func (a Money) Less(b Money) (bool, error) {
	c, err := a.Cmp(b)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// Min returns the smaller amount, or a if the amounts are equal.
// It fails under the same conditions as [Money.Cmp].
func (a Money) Min(b Money) (Money, error) {
	switch c, err := a.Cmp(b); {
	case err != nil:
		return Money{}, err
	case c <= 0:
		return a, nil
	default:
		return b, nil
	}
}

// Max returns the larger amount, or a if the amounts are equal.
// It fails under the same conditions as [Money.Cmp].
func (a Money) Max(b Money) (Money, error) {
	switch c, err := a.Cmp(b); {
	case err != nil:
		return Money{}, err
	case c >= 0:
		return a, nil
	default:
		return b, nil
	}
}

// Sum returns the sum of the amounts.
// The sum of no amounts is the zero of [DefaultCurrency].
//
// Amounts are added from left to right with [Money.Add], so Sum returns an
// error wrapping [ErrCurrencyMismatch] as soon as two amounts in different
// currencies meet, even when one of them is zero.
// Which pair triggers the error depends on the order of the amounts and
// should not be relied upon.
func Sum(amounts ...Money) (Money, error) {
	if len(amounts) == 0 {
		return Zero(DefaultCurrency()), nil
	}
	var err error
	s := amounts[0]
	for _, b := range amounts[1:] {
		s, err = s.Add(b)
		if err != nil {
			return Money{}, fmt.Errorf("summing %v amounts: %w", len(amounts), err)
		}
	}
	return s, nil
}

// amountString returns the amount with all the digits required by the currency.
func (a Money) amountString() string {
	return a.value.StringFixed(int32(a.curr.Scale()))
}

// String implements the [fmt.Stringer] interface and returns the currency
// symbol in the default locale followed by a space and the amount,
// e.g. "$ 5.67".
// See also methods [Money.Localized], [Money.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Money) String() string {
	return a.curr.DefaultSymbol() + " " + a.amountString()
}

// Localized is like [Money.String] but uses the currency symbol of the
// given locale, e.g. "US$ 5.67" for Canadian English.
// If tag is [language.Und], the default locale is used.
func (a Money) Localized(tag language.Tag) string {
	return a.curr.Symbol(tag) + " " + a.amountString()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example   | Description                     |
//	| ------ | --------- | ------------------------------- |
//	| %s, %v | $ 5.67    | Symbol and amount               |
//	| %q     | "$ 5.67"  | Quoted symbol and amount        |
//	| %f     | 5.67      | Amount                          |
//	| %c     | USD       | Currency code                   |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Money) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 's', 'S', 'v', 'V':
		s = a.String()
	case 'q', 'Q':
		s = `"` + a.String() + `"`
	case 'f', 'F':
		s = a.amountString()
	case 'c', 'C':
		s = a.curr.Code()
	default:
		fmt.Fprintf(state, "%%!%c(money.Money=%s %s)", verb, a.curr.Code(), a.amountString())
		return
	}
	writePadded(state, s)
}
