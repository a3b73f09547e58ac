// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

// Amount represents a monetary value in whole currency units.
// The billing model does not support fractional currency: all inputs
// are parsed as integers and all arithmetic stays in int64.
// Example: sale amount = quantity*rate + shippingCost - discount.
type Amount int64

func (a Amount) IsZero() bool     { return a == 0 }
func (a Amount) IsPositive() bool { return a > 0 }
func (a Amount) IsNegative() bool { return a < 0 }
func (a Amount) Neg() Amount      { return -a }
func (a Amount) Abs() Amount {
	if a < 0 {
		return -a
	}
	return a
}

// Int64 returns the raw value.
func (a Amount) Int64() int64 { return int64(a) }

// Quantity is a count of discrete stock units.
// Products are tracked in whole pieces, so no fixed-point scaling is needed.
type Quantity int64

func (q Quantity) IsZero() bool     { return q == 0 }
func (q Quantity) IsPositive() bool { return q > 0 }
func (q Quantity) IsNegative() bool { return q < 0 }
func (q Quantity) Neg() Quantity    { return -q }

// Int64 returns the raw value.
func (q Quantity) Int64() int64 { return int64(q) }

// Ratio represents a fractional derived value (average rates in reports).
// Stored amounts stay integer; only report math divides.
type Ratio = decimal.Decimal

// NewRatio builds a Ratio from an integer value.
func NewRatio(v int64) Ratio {
	return decimal.NewFromInt(v)
}

// AverageRate divides a total amount by a total quantity.
// Returns zero when quantity is zero.
func AverageRate(amount Amount, quantity Quantity) Ratio {
	if quantity == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(amount)).
		DivRound(decimal.NewFromInt(int64(quantity)), 4)
}
