package dto

import (
	"time"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/types"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/documents/sale"
)

// CreateSaleRequest for recording sales.
type CreateSaleRequest struct {
	CustomerPhone string     `json:"customerPhone" binding:"required"`
	ProductCode   string     `json:"productCode" binding:"required"`
	Quantity      int64      `json:"quantity" binding:"required,min=1"`
	Rate          int64      `json:"rate" binding:"omitempty,min=0"`
	ShippingCost  int64      `json:"shippingCost" binding:"omitempty,min=0"`
	Discount      int64      `json:"discount" binding:"omitempty,min=0"`
	Paid          int64      `json:"paid" binding:"omitempty,min=0"`
	Date          *time.Time `json:"date"`
	Comment       string     `json:"comment"`
}

// ToInput converts the request into a service input.
func (r CreateSaleRequest) ToInput() sale.CreateInput {
	input := sale.CreateInput{
		CustomerPhone: r.CustomerPhone,
		ProductCode:   r.ProductCode,
		Quantity:      types.Quantity(r.Quantity),
		Rate:          types.Amount(r.Rate),
		ShippingCost:  types.Amount(r.ShippingCost),
		Discount:      types.Amount(r.Discount),
		Paid:          types.Amount(r.Paid),
		Comment:       r.Comment,
	}
	if r.Date != nil {
		input.Date = *r.Date
	}
	return input
}

// UpdateSaleRequest for amending sales.
type UpdateSaleRequest struct {
	Quantity int64      `json:"quantity" binding:"required,min=1"`
	Rate     int64      `json:"rate" binding:"omitempty,min=0"`
	Shipping int64      `json:"shippingCost" binding:"omitempty,min=0"`
	Discount int64      `json:"discount" binding:"omitempty,min=0"`
	Paid     int64      `json:"paid" binding:"omitempty,min=0"`
	Date     *time.Time `json:"date"`
	Comment  string     `json:"comment"`
	Version  int        `json:"version" binding:"required,min=1"`
}

// ToInput converts the request into a service input.
func (r UpdateSaleRequest) ToInput() sale.UpdateInput {
	input := sale.UpdateInput{
		Quantity:     types.Quantity(r.Quantity),
		Rate:         types.Amount(r.Rate),
		ShippingCost: types.Amount(r.Shipping),
		Discount:     types.Amount(r.Discount),
		Paid:         types.Amount(r.Paid),
		Comment:      r.Comment,
		Version:      r.Version,
	}
	if r.Date != nil {
		input.Date = *r.Date
	}
	return input
}

// SaleListQuery contains sale list query parameters.
type SaleListQuery struct {
	CustomerPhone string     `form:"customerPhone"`
	DateFrom      *time.Time `form:"dateFrom" time_format:"2006-01-02"`
	DateTo        *time.Time `form:"dateTo" time_format:"2006-01-02"`
	Limit         int        `form:"limit" binding:"omitempty,min=1,max=1000"`
	Offset        int        `form:"offset" binding:"omitempty,min=0"`
}

// ToFilter converts the query into a repository filter.
func (q SaleListQuery) ToFilter() sale.ListFilter {
	f := sale.ListFilter{
		CustomerPhone: q.CustomerPhone,
		Limit:         q.Limit,
		Offset:        q.Offset,
	}
	if f.Limit == 0 {
		f.Limit = 50
	}
	if q.DateFrom != nil {
		f.DateFrom = *q.DateFrom
	}
	if q.DateTo != nil {
		f.DateTo = *q.DateTo
	}
	return f
}

// SaleResponse contains sale fields.
type SaleResponse struct {
	ID           string    `json:"id"`
	EntryID      string    `json:"entryId"`
	CustomerID   string    `json:"customerId"`
	ProductID    string    `json:"productId"`
	Quantity     int64     `json:"quantity"`
	Rate         int64     `json:"rate"`
	ShippingCost int64     `json:"shippingCost"`
	Discount     int64     `json:"discount"`
	Amount       int64     `json:"amount"`
	Paid         int64     `json:"paid"`
	Date         time.Time `json:"date"`
	Comment      string    `json:"comment,omitempty"`
	Version      int       `json:"version"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FromSale creates SaleResponse from a Sale.
func FromSale(s *sale.Sale) SaleResponse {
	return SaleResponse{
		ID:           s.ID.String(),
		EntryID:      s.EntryID.String(),
		CustomerID:   s.CustomerID.String(),
		ProductID:    s.ProductID.String(),
		Quantity:     s.Quantity.Int64(),
		Rate:         s.Rate.Int64(),
		ShippingCost: s.ShippingCost.Int64(),
		Discount:     s.Discount.Int64(),
		Amount:       s.Amount.Int64(),
		Paid:         s.Paid.Int64(),
		Date:         s.Date,
		Comment:      s.Comment,
		Version:      s.Version,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// FromSales maps a sale slice to responses.
func FromSales(items []*sale.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromSale(s))
	}
	return out
}
