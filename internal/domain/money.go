package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an amount of currency held as integer cents. Prices and basket
// totals are computed in cents so repeated multiplication and addition never
// accumulate floating-point drift.
type Money int64

// NewMoneyFromCents builds a Money from an integer number of cents.
func NewMoneyFromCents(cents int64) Money {
	return Money(cents)
}

// ParseMoney parses a decimal string such as "10.00" into Money. Amounts with
// more than two fractional digits are rejected rather than silently rounded.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid money amount %q: %w", s, err)
	}
	if d.Exponent() < -2 {
		return 0, fmt.Errorf("invalid money amount %q: more than two decimal places", s)
	}
	cents := d.Shift(2)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("invalid money amount %q: not representable in cents", s)
	}
	return Money(cents.IntPart()), nil
}

// Cents returns the raw cent count.
func (m Money) Cents() int64 {
	return int64(m)
}

// Mul multiplies the amount by an integer quantity.
func (m Money) Mul(quantity int64) Money {
	return Money(int64(m) * quantity)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// Negative reports whether the amount is below zero.
func (m Money) Negative() bool {
	return m < 0
}

// Decimal returns the amount as a two-decimal-place decimal value.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// String formats the amount with two decimal places, e.g. "38.00".
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// MarshalJSON encodes the amount as a JSON string with two decimal places.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON decodes either a JSON string ("10.00") or a bare number.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseMoney(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
