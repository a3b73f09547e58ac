// Package customer provides the Customer catalog.
// Customers are identified by a unique phone number used as the natural
// key on sale and return forms.
package customer

import (
	"context"
	"regexp"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/apperror"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/entity"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/types"
)

var phoneRE = regexp.MustCompile(`^[0-9+\-() ]{6,20}$`)

// Customer represents a buyer.
//
// Amount, Paid, Due, ReturnAmount and Profit are fully derived: they
// mirror the sum of the customer's sale and return records as of the
// last rollup recompute and are written only through
// Repository.PersistRollup.
type Customer struct {
	entity.BaseCatalog

	// Name is the display name
	Name string `db:"name" json:"name"`

	// Phone is the unique natural key
	Phone string `db:"phone" json:"phone"`

	// Address is an optional contact address
	Address string `db:"address" json:"address,omitempty"`

	// Derived fields, owned by the rollup engine
	Amount       types.Amount `db:"amount" json:"amount"`
	Paid         types.Amount `db:"paid" json:"paid"`
	Due          types.Amount `db:"due" json:"due"`
	ReturnAmount types.Amount `db:"return_amount" json:"returnAmount"`
	Profit       types.Amount `db:"profit" json:"profit"`
}

// New creates a new Customer.
func New(name, phone string) *Customer {
	return &Customer{
		BaseCatalog: entity.NewBaseCatalog(),
		Name:        name,
		Phone:       phone,
	}
}

// Validate implements entity.Validatable.
func (c *Customer) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	if c.Phone == "" {
		return apperror.NewValidation("phone is required").
			WithDetail("field", "phone")
	}

	if !phoneRE.MatchString(c.Phone) {
		return apperror.NewValidation("invalid phone format").
			WithDetail("field", "phone").
			WithDetail("value", c.Phone)
	}

	return nil
}
