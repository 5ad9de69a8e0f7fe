package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
// Money must be created via NewMoney, MoneyFromString, or ZeroMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromString, or ZeroMoney")

// Money is an immutable value object representing a monetary amount with
// two fraction digits of precision. It is backed by a decimal type so that
// arithmetic never suffers binary floating-point drift; rounding to two
// decimal places happens only where a value becomes externally visible
// (order totals, persistence, serialization).
//
// Money never carries a negative amount. Catalog prices, line subtotals,
// order totals, and change-for amounts are all non-negative by
// construction.
//
// Example:
//
//	price, err := kernel.MoneyFromString("49.90")
//	if err != nil {
//	    // handle validation error
//	}
//	total := price.MulInt(2).Round() // 99.80
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount.String()))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromString parses a decimal string such as "49.90" into Money.
// Returns an error if the string is not a valid decimal or is negative.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a valid Money carrying a zero amount.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// MulInt returns the amount multiplied by an integer factor.
// Used for line subtotals (unit price times quantity).
func (m Money) MulInt(factor int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(factor))),
		guard:  guard.NewConstructorGuard(),
	}
}

// Round returns the amount rounded to two decimal places using standard
// rounding (half away from zero).
func (m Money) Round() Money {
	return Money{
		amount: m.amount.Round(2),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsEqual compares two Money values numerically.
// 99.8 and 99.80 are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String returns the amount formatted with exactly two fraction digits.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate checks that the Money was properly constructed and carries a
// non-negative amount.
func (m Money) Validate() error {
	if err := m.guard.Validate(ErrMoneyIsNotConstructed); err != nil {
		return err
	}
	if m.amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", m.amount.String()))
	}
	return nil
}
