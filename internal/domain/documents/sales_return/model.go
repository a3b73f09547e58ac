// Package sales_return provides the Return document: sold units coming
// back from a customer.
package sales_return

import (
	"context"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/apperror"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/entity"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/types"
)

// Return is a sales-return transaction. Like a sale, it owns exactly
// one ledger entry; the entry puts the units back on hand.
type Return struct {
	entity.Document

	// EntryID links the stock ledger entry backing this return
	EntryID id.ID `db:"entry_id" json:"entryId"`

	CustomerID id.ID `db:"customer_id" json:"customerId"`
	ProductID  id.ID `db:"product_id" json:"productId"`

	// Quantity of units returned
	Quantity types.Quantity `db:"quantity" json:"quantity"`

	// Rate is an optional per-unit hint kept for display
	Rate types.Amount `db:"rate" json:"rate"`

	// Amount is the value credited back, stored as supplied
	Amount types.Amount `db:"amount" json:"amount"`
}

// New creates a new Return. The amount is taken as supplied; it does
// not have to divide evenly by quantity. The document date defaults to
// now when none is set later.
func New(customerID, productID id.ID, quantity types.Quantity, amount, rate types.Amount) *Return {
	return &Return{
		Document:   entity.NewDocument(),
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   quantity,
		Rate:       rate,
		Amount:     amount,
	}
}

// ResolveAmount returns the credited total for a return form: the
// supplied amount when present, otherwise quantity*rate.
func ResolveAmount(quantity types.Quantity, amount, rate types.Amount) types.Amount {
	if amount != 0 {
		return amount
	}
	return types.Amount(int64(quantity) * int64(rate))
}

// Validate implements entity.Validatable.
func (r *Return) Validate(ctx context.Context) error {
	if err := r.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(r.CustomerID) {
		return apperror.NewValidation("customer is required").
			WithDetail("field", "customerId")
	}
	if id.IsNil(r.ProductID) {
		return apperror.NewValidation("product is required").
			WithDetail("field", "productId")
	}
	if !r.Quantity.IsPositive() {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("field", "quantity").
			WithDetail("value", r.Quantity)
	}
	if r.Rate.IsNegative() {
		return apperror.NewValidation("rate must not be negative").
			WithDetail("field", "rate")
	}
	if r.Amount.IsNegative() {
		return apperror.NewValidation("amount must not be negative").
			WithDetail("field", "amount")
	}

	return nil
}
