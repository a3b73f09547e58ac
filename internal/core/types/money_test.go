package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	assert.True(t, Amount(0).IsZero())
	assert.True(t, Amount(5).IsPositive())
	assert.True(t, Amount(-5).IsNegative())
	assert.Equal(t, Amount(-5), Amount(5).Neg())
	assert.Equal(t, Amount(5), Amount(-5).Abs())
	assert.Equal(t, int64(42), Amount(42).Int64())
}

func TestQuantity(t *testing.T) {
	assert.True(t, Quantity(0).IsZero())
	assert.True(t, Quantity(3).IsPositive())
	assert.True(t, Quantity(-3).IsNegative())
	assert.Equal(t, Quantity(-3), Quantity(3).Neg())
}

func TestAverageRate(t *testing.T) {
	tests := []struct {
		name     string
		amount   Amount
		quantity Quantity
		want     string
	}{
		{name: "even division", amount: 300, quantity: 3, want: "100"},
		{name: "fractional result", amount: 100, quantity: 3, want: "33.3333"},
		{name: "zero quantity", amount: 500, quantity: 0, want: "0"},
		{name: "zero amount", amount: 0, quantity: 5, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AverageRate(tt.amount, tt.quantity)
			want, err := decimal.NewFromString(tt.want)
			assert.NoError(t, err)
			assert.True(t, got.Equal(want), "want %s, got %s", want, got)
		})
	}
}
