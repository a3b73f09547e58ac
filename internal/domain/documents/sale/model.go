// Package sale provides the Sale document: one product sold to one
// customer, with its price breakdown and the payment received.
package sale

import (
	"context"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/apperror"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/entity"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/types"
)

// Sale is a sales transaction. Every sale owns exactly one ledger entry
// (EntryID); the pair is written and removed together.
type Sale struct {
	entity.Document

	// EntryID links the stock ledger entry backing this sale
	EntryID id.ID `db:"entry_id" json:"entryId"`

	CustomerID id.ID `db:"customer_id" json:"customerId"`
	ProductID  id.ID `db:"product_id" json:"productId"`

	// Quantity of units sold
	Quantity types.Quantity `db:"quantity" json:"quantity"`

	// Rate is the per-unit price agreed for this sale
	Rate types.Amount `db:"rate" json:"rate"`

	// ShippingCost is added on top of quantity*rate
	ShippingCost types.Amount `db:"shipping_cost" json:"shippingCost"`

	// Discount is subtracted from the total
	Discount types.Amount `db:"discount" json:"discount"`

	// Amount is the derived total: quantity*rate + shipping - discount
	Amount types.Amount `db:"amount" json:"amount"`

	// Paid is the payment received with this sale
	Paid types.Amount `db:"paid" json:"paid"`
}

// New creates a new Sale with the amount derived from its inputs.
func New(customerID, productID id.ID, quantity types.Quantity, rate, shippingCost, discount, paid types.Amount) *Sale {
	s := &Sale{
		Document:     entity.NewDocument(),
		CustomerID:   customerID,
		ProductID:    productID,
		Quantity:     quantity,
		Rate:         rate,
		ShippingCost: shippingCost,
		Discount:     discount,
		Paid:         paid,
	}
	s.RecalcAmount()
	return s
}

// RecalcAmount rewrites the derived total from the current inputs.
// Call after any change to quantity, rate, shipping cost or discount.
func (s *Sale) RecalcAmount() {
	s.Amount = types.Amount(int64(s.Quantity)*int64(s.Rate)) + s.ShippingCost - s.Discount
}

// Validate implements entity.Validatable.
func (s *Sale) Validate(ctx context.Context) error {
	if err := s.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(s.CustomerID) {
		return apperror.NewValidation("customer is required").
			WithDetail("field", "customerId")
	}
	if id.IsNil(s.ProductID) {
		return apperror.NewValidation("product is required").
			WithDetail("field", "productId")
	}
	if !s.Quantity.IsPositive() {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("field", "quantity").
			WithDetail("value", s.Quantity)
	}
	if s.Rate.IsNegative() {
		return apperror.NewValidation("rate must not be negative").
			WithDetail("field", "rate")
	}
	if s.ShippingCost.IsNegative() {
		return apperror.NewValidation("shipping cost must not be negative").
			WithDetail("field", "shippingCost")
	}
	if s.Discount.IsNegative() {
		return apperror.NewValidation("discount must not be negative").
			WithDetail("field", "discount")
	}
	if s.Paid.IsNegative() {
		return apperror.NewValidation("paid must not be negative").
			WithDetail("field", "paid")
	}
	if s.Amount.IsNegative() {
		return apperror.NewValidation("discount exceeds the sale total").
			WithDetail("field", "discount").
			WithDetail("amount", s.Amount)
	}

	return nil
}
