package kernel

import (
	"fmt"

	"ordermanagement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits every amount is kept at.
const MoneyScale = 2

// ErrMoneyIsNotConstructed is returned when a zero Money value is used.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or MoneyFromString")

// Money is a non-negative fixed point amount with two fractional digits.
// Arithmetic is exact: a price of 10.10 multiplied by 3 is 30.30, not 30.299999.
//
// Example:
//
//	price, err := kernel.MoneyFromString("10.00")
//	if err != nil {
//	    return err
//	}
//	subtotal := price.Mul(2) // 20.00
type Money struct {
	amount        decimal.Decimal
	isConstructed bool
}

// ZeroMoney returns 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, isConstructed: true}
}

// NewMoney validates amount and returns it as Money.
// Negative amounts and amounts with more than two fractional digits are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money", fmt.Errorf("%s is negative", amount.String()))
	}
	if !amount.Equal(amount.Truncate(MoneyScale)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money", fmt.Errorf("%s has more than %d fractional digits", amount.String(), MoneyScale))
	}
	return Money{amount: amount, isConstructed: true}, nil
}

// MoneyFromString parses a decimal string such as "10.00" or "3.5".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(amount)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), isConstructed: true}
}

// Mul returns m multiplied by a quantity.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))), isConstructed: true}
}

// IsEqual compares two amounts numerically, so 20 equals 20.00.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String formats the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

// Validate returns ErrMoneyIsNotConstructed for the zero value.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
