package dto

import (
	"time"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/types"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/documents/sales_return"
)

// CreateReturnRequest for recording returns. Amount is the credited
// value taken as supplied; rate is an optional per-unit convenience
// the amount derives from when absent.
type CreateReturnRequest struct {
	CustomerPhone string     `json:"customerPhone" binding:"required"`
	ProductCode   string     `json:"productCode" binding:"required"`
	Quantity      int64      `json:"quantity" binding:"required,min=1"`
	Amount        int64      `json:"amount" binding:"omitempty,min=0"`
	Rate          int64      `json:"rate" binding:"omitempty,min=0"`
	Date          *time.Time `json:"date"`
	Comment       string     `json:"comment"`
}

// ToInput converts the request into a service input.
func (r CreateReturnRequest) ToInput() sales_return.CreateInput {
	input := sales_return.CreateInput{
		CustomerPhone: r.CustomerPhone,
		ProductCode:   r.ProductCode,
		Quantity:      types.Quantity(r.Quantity),
		Amount:        types.Amount(r.Amount),
		Rate:          types.Amount(r.Rate),
		Comment:       r.Comment,
	}
	if r.Date != nil {
		input.Date = *r.Date
	}
	return input
}

// UpdateReturnRequest for amending returns.
type UpdateReturnRequest struct {
	Quantity int64      `json:"quantity" binding:"required,min=1"`
	Amount   int64      `json:"amount" binding:"omitempty,min=0"`
	Rate     int64      `json:"rate" binding:"omitempty,min=0"`
	Date     *time.Time `json:"date"`
	Comment  string     `json:"comment"`
	Version  int        `json:"version" binding:"required,min=1"`
}

// ToInput converts the request into a service input.
func (r UpdateReturnRequest) ToInput() sales_return.UpdateInput {
	input := sales_return.UpdateInput{
		Quantity: types.Quantity(r.Quantity),
		Amount:   types.Amount(r.Amount),
		Rate:     types.Amount(r.Rate),
		Comment:  r.Comment,
		Version:  r.Version,
	}
	if r.Date != nil {
		input.Date = *r.Date
	}
	return input
}

// ReturnListQuery contains return list query parameters.
type ReturnListQuery struct {
	CustomerPhone string     `form:"customerPhone"`
	DateFrom      *time.Time `form:"dateFrom" time_format:"2006-01-02"`
	DateTo        *time.Time `form:"dateTo" time_format:"2006-01-02"`
	Limit         int        `form:"limit" binding:"omitempty,min=1,max=1000"`
	Offset        int        `form:"offset" binding:"omitempty,min=0"`
}

// ToFilter converts the query into a repository filter.
func (q ReturnListQuery) ToFilter() sales_return.ListFilter {
	f := sales_return.ListFilter{
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

// ReturnResponse contains return fields.
type ReturnResponse struct {
	ID         string    `json:"id"`
	EntryID    string    `json:"entryId"`
	CustomerID string    `json:"customerId"`
	ProductID  string    `json:"productId"`
	Quantity   int64     `json:"quantity"`
	Rate       int64     `json:"rate"`
	Amount     int64     `json:"amount"`
	Date       time.Time `json:"date"`
	Comment    string    `json:"comment,omitempty"`
	Version    int       `json:"version"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// FromReturn creates ReturnResponse from a Return.
func FromReturn(r *sales_return.Return) ReturnResponse {
	return ReturnResponse{
		ID:         r.ID.String(),
		EntryID:    r.EntryID.String(),
		CustomerID: r.CustomerID.String(),
		ProductID:  r.ProductID.String(),
		Quantity:   r.Quantity.Int64(),
		Rate:       r.Rate.Int64(),
		Amount:     r.Amount.Int64(),
		Date:       r.Date,
		Comment:    r.Comment,
		Version:    r.Version,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// FromReturns maps a return slice to responses.
func FromReturns(items []*sales_return.Return) []ReturnResponse {
	out := make([]ReturnResponse, 0, len(items))
	for _, r := range items {
		out = append(out, FromReturn(r))
	}
	return out
}
