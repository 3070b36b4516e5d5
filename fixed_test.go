package money

import (
	"testing"

	fixed "github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromFixed(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr   Currency
			amount string
			want   string
		}{
			{USD, "5", "5.00"},
			{USD, "5.6", "5.60"},
			{USD, "-5.67", "-5.67"},
			{JPY, "100", "100"},
			{OMR, "0.5", "0.500"},
			{USD, "99999999999999999.99", "99999999999999999.99"},
		}
		for _, tt := range tests {
			got, err := NewFromFixed(tt.curr, fixed.MustParse(tt.amount))
			require.NoError(t, err, "NewFromFixed(%v, %v)", tt.curr, tt.amount)
			assertMoney(t, tt.curr, tt.want, got)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			curr   Currency
			amount string
		}{
			"scale 1":  {USD, "5.678"},
			"scale 2":  {JPY, "0.5"},
			"overflow": {USD, "9999999999999999999"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewFromFixed(tt.curr, fixed.MustParse(tt.amount))
				assert.Error(t, err, "NewFromFixed(%v, %v)", tt.curr, tt.amount)
			})
		}

		_, err := NewFromFixed(USD, fixed.MustParse("0.001"))
		assert.ErrorIs(t, err, ErrInvariantViolation, "NewFromFixed(USD, 0.001)")
	})
}

func TestMoney_Fixed(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr, amount string
		}{
			{"USD", "5.67"},
			{"USD", "-0.01"},
			{"USD", "0.00"},
			{"JPY", "1234"},
			{"OMR", "1.500"},
		}
		for _, tt := range tests {
			a := MustParseMoney(tt.curr, tt.amount)
			got, err := a.Fixed()
			require.NoError(t, err, "%v.Fixed()", a)
			assert.Equal(t, tt.amount, got.String(), "%v.Fixed()", a)
			assert.Equal(t, a.RawCurrency().Scale(), got.Scale(), "%v.Fixed().Scale()", a)

			back, err := NewFromFixed(a.RawCurrency(), got)
			require.NoError(t, err, "NewFromFixed(%v, %v)", a.RawCurrency(), got)
			assert.True(t, back.Equal(a), "NewFromFixed(%v, %v) = %v, want %v", a.RawCurrency(), got, back, a)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"123456789012345678901234.56",
			"123456789012345678.91",
		}
		for _, tt := range tests {
			_, err := MustParseMoney("USD", tt).Fixed()
			assert.Error(t, err, "%v.Fixed()", tt)
		}
	})
}
