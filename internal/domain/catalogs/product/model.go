// Package product provides the Product catalog.
// Products are identified by a unique code used as the natural key on
// sale and return forms.
package product

import (
	"context"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/apperror"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/entity"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/types"
)

// Product represents an item tracked in inventory.
type Product struct {
	entity.Catalog

	// Rate is the default selling rate per unit (whole currency units).
	Rate types.Amount `db:"rate" json:"rate"`
}

// New creates a new Product.
func New(code, name string, rate types.Amount) *Product {
	return &Product{
		Catalog: entity.NewCatalog(code, name),
		Rate:    rate,
	}
}

// Validate implements entity.Validatable.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if p.Code == "" {
		return apperror.NewValidation("code is required").
			WithDetail("field", "code")
	}

	if p.Rate.IsNegative() {
		return apperror.NewValidation("rate must not be negative").
			WithDetail("field", "rate")
	}

	return nil
}
