/*
Package money implements exact monetary values in various currencies.
It combines arbitrary-precision decimals from the [decimal] package with
a [Currency] registry based on ISO 4217.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - The scale of every value always matches the scale of its currency
  - Arithmetic and comparison operations between monetary values
  - Explicit rounding modes for multiplication, division, and allocation
  - Exact ratios between monetary values with deferred rounding
  - Currency symbols for any locale, based on the Unicode CLDR

# Representation

The package consists of two main types: Money and Currency.
Money consists of a Currency and a decimal.Decimal value whose scale,
i.e. the number of digits after the decimal point, is always equal to
[Currency.Scale].
[New] refuses amounts with any other scale, while [Adjust] and [AdjustBy]
rescale them explicitly.

Currency is implemented as an integer index into an immutable in-memory
table containing information such as code and scale.

# Operations

[Money.Add] and [Money.Sub] require both amounts to be denominated in the
same currency.
Ordering with [Money.Cmp] is more relaxed: a zero amount can be compared
with an amount in any currency.
[Money.Mul] and [Money.Quo] round the exact result to the scale of the
currency; their Round variants accept a [RoundingMode].
[Money.Rat] returns the exact [Ratio] between two amounts, which
[Money.Apply] can later apply to any amount with a single rounding.

# Default locale

Currency symbols and the currency of an empty [Sum] depend on the default
locale of the process, which is taken from the MONEY_LOCALE, LC_ALL,
LC_MONETARY, or LANG environment variables (in this order) and defaults to
"en-US".

# Errors

Errors are returned, never logged or recovered internally, and can be
matched with [errors.Is] against [ErrInvariantViolation],
[ErrCurrencyMismatch], [ErrDivisionByZero], and [ErrUnknownCurrency].
*/
package money
