package money

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

//go:generate go run scripts/currency/codegen.go

// Currency type represents a currency in the global financial system.
// The zero value is [XXX], which indicates the absence of a currency.
//
// Currency is implemented as an integer index into an immutable in-memory
// table populated at build time with properties defined by [ISO 4217],
// such as code and default number of fraction digits.
// The table is never modified at run time, so a Currency can be shared
// freely between goroutines.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Currency uint8

// ParseCurr converts a string to currency.
// The input string must be in one of the following formats:
//
//	USD
//	usd
//	840
//
// ParseCurr returns an error wrapping [ErrUnknownCurrency] if the string
// is not a registered currency code.
func ParseCurr(curr string) (Currency, error) {
	c, ok := currLookup[strings.ToUpper(curr)]
	if !ok {
		return XXX, fmt.Errorf("parsing currency %q: %w", curr, ErrUnknownCurrency)
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

// String method implements the [fmt.Stringer] interface and returns
// the alphabetic code of the currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// Code returns the [3-letter code] assigned to the currency by the ISO 4217 standard.
//
// [3-letter code]: https://en.wikipedia.org/wiki/ISO_4217#National_currencies
func (c Currency) Code() string {
	return codeLookup[c]
}

// Num returns the [3-digit code] assigned to the currency by the ISO 4217 standard.
//
// [3-digit code]: https://en.wikipedia.org/wiki/ISO_4217#Numeric_codes
func (c Currency) Num() string {
	return numLookup[c]
}

// Name returns the English name of the currency.
func (c Currency) Name() string {
	return nameLookup[c]
}

// Scale returns the default number of fraction digits of the currency,
// that is the scale every [Money] in this currency carries.
// The registered currencies use scales of 0, 2, or 3:
//   - A scale of 0 indicates currencies without minor units, like the Japanese Yen.
//   - A scale of 2 indicates currencies like the US Dollar, whose minor unit,
//     1 cent, is 0.01 dollars.
//   - A scale of 3 indicates currencies like the Omani Rial, whose minor unit,
//     1 baisa, is 0.001 rials.
func (c Currency) Scale() int {
	return int(scaleLookup[c])
}

// Symbol returns the symbol used for the currency in the given locale,
// as defined by the [Unicode CLDR].
// If tag is [language.Und], the default locale is used instead
// (see [DefaultLocale]).
// The alphabetic code is returned if CLDR does not define a symbol.
//
// [Unicode CLDR]: https://cldr.unicode.org
func (c Currency) Symbol(tag language.Tag) string {
	if c == XXX || c == XTS {
		return c.Code()
	}
	u, err := currency.ParseISO(c.Code())
	if err != nil {
		return c.Code()
	}
	sym := printerFor(tag).Sprint(currency.Symbol(u))
	if sym == "" {
		return c.Code()
	}
	return sym
}

// DefaultSymbol returns the symbol of the currency in the default locale.
// See also method [Currency.Symbol].
func (c Currency) DefaultSymbol() string {
	return c.Symbol(DefaultLocale())
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | USD     | Currency        |
//	| %q         | "USD"   | Quoted currency |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	s := c.Code()
	switch verb {
	case 'q', 'Q':
		s = `"` + s + `"`
	case 'c', 'C', 's', 'S', 'v', 'V':
	default:
		fmt.Fprintf(state, "%%!%c(money.Currency=%s)", verb, s)
		return
	}
	writePadded(state, s)
}

// writePadded writes s to the state honoring its width and the '-' flag.
func writePadded(state fmt.State, s string) {
	pad := ""
	if w, ok := state.Width(); ok {
		if n := utf8.RuneCountInString(s); w > n {
			pad = strings.Repeat(" ", w-n)
		}
	}
	//nolint:errcheck
	if state.Flag('-') {
		state.Write([]byte(s + pad))
	} else {
		state.Write([]byte(pad + s))
	}
}
