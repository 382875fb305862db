package kernel

import (
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of decimal places every Money amount is rounded to.
const moneyScale = 2

// ErrMoneyIsNegative is returned when constructing Money from a negative amount.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount must not be negative")

// Money is an immutable non-negative currency amount with fixed-point
// arithmetic. Amounts are rounded half-up to two decimal places at
// construction, so equal amounts always compare equal regardless of the
// precision they were produced with.
//
// The zero value is a valid zero amount; arithmetic never produces a negative
// result (subtraction clamps at zero, matching how order totals are defined).
//
// Example:
//
//	price, _ := kernel.NewMoneyFromString("10.00")
//	subtotal := price.MulInt(2)           // 20.00
//	total := subtotal.Add(deliveryFee).Sub(discount)
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money amount from a decimal value, rounding half-up to
// two decimal places. Returns ErrMoneyIsNegative for negative input.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{amount: amount.Round(moneyScale)}, nil
}

// NewMoneyFromString creates a Money amount from its decimal string
// representation, e.g. "7.25".
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return NewMoney(d)
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference clamped at zero. Totals in this domain are
// defined as max(0, ...), so Money subtraction never goes negative.
func (m Money) Sub(other Money) Money {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return ZeroMoney()
	}
	return Money{amount: result}
}

// MulInt returns the amount multiplied by a non-negative integer quantity.
func (m Money) MulInt(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))).Round(moneyScale)}
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual reports whether two amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// LessThan reports whether m is strictly less than other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// String returns the amount with exactly two decimal places, e.g. "5.00".
// Implements fmt.Stringer.
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}
