package money_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/ledgerkit/money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// DiscountShares allocates the discount to the line items in proportion to
// their amounts.
func DiscountShares(discount money.Money, items ...money.Money) ([]money.Money, error) {
	subtotal, err := money.Sum(items...)
	if err != nil {
		return nil, err
	}
	shares := make([]money.Money, len(items))
	for i, item := range items {
		r, err := item.Rat(subtotal)
		if err != nil {
			return nil, err
		}
		shares[i] = discount.Apply(r, money.HalfEven)
	}
	return shares, nil
}

// In this example, a discount is spread across the items of an invoice.
// The exact share of every item is kept as a ratio and rounded only once.
func Example_discountAllocation() {
	discount := money.MustParseMoney("USD", "7")
	shares, err := DiscountShares(discount,
		money.MustParseMoney("USD", "30"),
		money.MustParseMoney("USD", "50"),
		money.MustParseMoney("USD", "20"),
	)
	if err != nil {
		panic(err)
	}
	for _, s := range shares {
		fmt.Printf("%c %f\n", s, s)
	}
	// Output:
	// USD 2.10
	// USD 3.50
	// USD 1.40
}

func ExampleNew() {
	_, err := money.New(decimal.RequireFromString("1.5"), money.USD)
	fmt.Println(errors.Is(err, money.ErrInvariantViolation))

	m, err := money.New(decimal.RequireFromString("1.50"), money.USD)
	fmt.Printf("%c %f %v\n", m, m, err)
	// Output:
	// true
	// USD 1.50 <nil>
}

func ExampleAdjustBy() {
	d := decimal.RequireFromString("2.345")
	fmt.Printf("%f\n", money.AdjustBy(d, money.USD, money.HalfEven))
	fmt.Printf("%f\n", money.AdjustBy(d, money.USD, money.HalfUp))
	fmt.Printf("%f\n", money.AdjustBy(d, money.USD, money.Floor))
	fmt.Printf("%f\n", money.AdjustBy(d, money.JPY, money.Up))
	// Output:
	// 2.34
	// 2.35
	// 2.34
	// 3
}

func ExampleAdjust() {
	fmt.Printf("%f\n", money.Adjust(decimal.RequireFromString("2"), money.USD))
	fmt.Printf("%f\n", money.Adjust(decimal.RequireFromString("2.125"), money.USD))
	// Output:
	// 2.00
	// 2.12
}

func ExampleMoney_Cmp() {
	ten := money.MustParseMoney("USD", "10")
	fmt.Println(ten.Cmp(money.Zero(money.JPY)))
	fmt.Println(money.Zero(money.USD).Cmp(money.Zero(money.JPY)))

	_, err := ten.Cmp(money.MustParseMoney("EUR", "5"))
	fmt.Println(errors.Is(err, money.ErrCurrencyMismatch))
	// Output:
	// 1 <nil>
	// 0 <nil>
	// true
}

func ExampleMoney_Add() {
	ten := money.MustParseMoney("USD", "10")
	sum, err := ten.Add(money.MustParseMoney("USD", "0.05"))
	fmt.Printf("%f %v\n", sum, err)

	// The currency of a zero amount still counts.
	_, err = ten.Add(money.Zero(money.JPY))
	fmt.Println(errors.Is(err, money.ErrCurrencyMismatch))
	// Output:
	// 10.05 <nil>
	// true
}

func ExampleMoney_MulRound() {
	one := money.MustParseMoney("USD", "1")
	fmt.Printf("%f\n", one.MulRound(decimal.RequireFromString("0.125"), money.HalfEven))
	fmt.Printf("%f\n", one.MulRound(decimal.RequireFromString("0.135"), money.HalfEven))
	fmt.Printf("%f\n", one.MulRound(decimal.RequireFromString("0.125"), money.Up))
	// Output:
	// 0.12
	// 0.14
	// 0.13
}

func ExampleMoney_Quo() {
	q, err := money.MustParseMoney("USD", "10").Quo(decimal.NewFromInt(3))
	fmt.Printf("%f %v\n", q, err)

	_, err = money.MustParseMoney("USD", "10").Quo(decimal.Zero)
	fmt.Println(errors.Is(err, money.ErrDivisionByZero))
	// Output:
	// 3.33 <nil>
	// true
}

func ExampleMoney_Rat() {
	a := money.MustParseMoney("USD", "1")
	b := money.MustParseMoney("USD", "3")
	r, err := a.Rat(b)
	fmt.Println(r, err)
	fmt.Printf("%f\n", b.Apply(r, money.HalfEven))
	// Output:
	// 1/3 <nil>
	// 1.00
}

func ExampleMoney_Split() {
	parts, err := money.MustParseMoney("USD", "10").Split(3)
	if err != nil {
		panic(err)
	}
	for _, p := range parts {
		fmt.Printf("%f\n", p)
	}
	// Output:
	// 3.34
	// 3.33
	// 3.33
}

func ExampleMoney_MinIncrement() {
	fmt.Printf("%f\n", money.Zero(money.USD).MinIncrement())
	fmt.Printf("%f\n", money.Zero(money.JPY).MinIncrement())
	fmt.Printf("%f\n", money.MustParseMoney("OMR", "0.999").Increment())
	// Output:
	// 0.01
	// 1
	// 1.000
}

func ExampleSum() {
	s, err := money.Sum(money.MustParseMoney("USD", "10"), money.MustParseMoney("USD", "5"))
	fmt.Printf("%c %f %v\n", s, s, err)

	_, err = money.Sum(money.MustParseMoney("USD", "10"), money.Zero(money.JPY))
	fmt.Println(errors.Is(err, money.ErrCurrencyMismatch))
	// Output:
	// USD 15.00 <nil>
	// true
}

func ExampleMoney_Localized() {
	m := money.MustParseMoney("USD", "5.67")
	fmt.Println(m.Localized(language.English))
	fmt.Println(m.Localized(language.BritishEnglish))
	// Output:
	// $ 5.67
	// US$ 5.67
}

func ExampleMoney_Per() {
	salary := money.MustParseMoney("EUR", "4200")
	r, err := salary.Per(30 * 24 * time.Hour)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%f %v\n", r.Money(), r.Duration())
	// Output:
	// 4200.00 720h0m0s
}

func ExampleParseCurr() {
	c, err := money.ParseCurr("jpy")
	fmt.Println(c, c.Scale(), err)

	_, err = money.ParseCurr("BTC")
	fmt.Println(errors.Is(err, money.ErrUnknownCurrency))
	// Output:
	// JPY 0 <nil>
	// true
}
