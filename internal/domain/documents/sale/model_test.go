package sale

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/apperror"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/types"
)

func TestNew_DerivesAmount(t *testing.T) {
	s := New(id.New(), id.New(), 5, 10, 3, 2, 0)

	// 5*10 + 3 - 2
	assert.Equal(t, types.Amount(51), s.Amount)
}

func TestRecalcAmount(t *testing.T) {
	s := New(id.New(), id.New(), 2, 100, 0, 0, 0)
	assert.Equal(t, types.Amount(200), s.Amount)

	s.Quantity = 3
	s.Discount = 50
	s.RecalcAmount()

	assert.Equal(t, types.Amount(250), s.Amount)
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*Sale)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(*Sale) {},
		},
		{
			name:    "missing customer",
			mutate:  func(s *Sale) { s.CustomerID = id.Nil() },
			wantErr: true,
		},
		{
			name:    "missing product",
			mutate:  func(s *Sale) { s.ProductID = id.Nil() },
			wantErr: true,
		},
		{
			name:    "zero quantity",
			mutate:  func(s *Sale) { s.Quantity = 0 },
			wantErr: true,
		},
		{
			name:    "negative rate",
			mutate:  func(s *Sale) { s.Rate = -1; s.RecalcAmount() },
			wantErr: true,
		},
		{
			name:    "negative paid",
			mutate:  func(s *Sale) { s.Paid = -1 },
			wantErr: true,
		},
		{
			name: "discount exceeds total",
			mutate: func(s *Sale) {
				s.Discount = 1000
				s.RecalcAmount()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(id.New(), id.New(), 2, 100, 10, 5, 100)
			tt.mutate(s)

			err := s.Validate(ctx)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, apperror.IsAppError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
