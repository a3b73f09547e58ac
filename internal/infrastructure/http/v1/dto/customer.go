package dto

import (
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/catalogs/customer"
)

// CreateCustomerRequest for creating customers.
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address"`
}

// ToEntity converts the request into a Customer.
func (r CreateCustomerRequest) ToEntity() *customer.Customer {
	c := customer.New(r.Name, r.Phone)
	c.Address = r.Address
	return c
}

// UpdateCustomerRequest for updating customers.
type UpdateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address"`
	Version int    `json:"version" binding:"required,min=1"`
}

// ApplyTo writes the editable fields onto an existing Customer. The
// derived balance fields are never taken from the request.
func (r UpdateCustomerRequest) ApplyTo(c *customer.Customer) {
	c.Name = r.Name
	c.Phone = r.Phone
	c.Address = r.Address
	c.SetVersion(r.Version)
}

// CustomerResponse contains customer fields including derived balances.
type CustomerResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address,omitempty"`
	Amount       int64  `json:"amount"`
	Paid         int64  `json:"paid"`
	Due          int64  `json:"due"`
	ReturnAmount int64  `json:"returnAmount"`
	Profit       int64  `json:"profit"`
	DeletionMark bool   `json:"deletionMark"`
	Version      int    `json:"version"`
}

// FromCustomer creates CustomerResponse from a Customer.
func FromCustomer(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:           c.ID.String(),
		Name:         c.Name,
		Phone:        c.Phone,
		Address:      c.Address,
		Amount:       c.Amount.Int64(),
		Paid:         c.Paid.Int64(),
		Due:          c.Due.Int64(),
		ReturnAmount: c.ReturnAmount.Int64(),
		Profit:       c.Profit.Int64(),
		DeletionMark: c.DeletionMark,
		Version:      c.Version,
	}
}

// FromCustomers maps a customer slice to responses.
func FromCustomers(items []*customer.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromCustomer(c))
	}
	return out
}
