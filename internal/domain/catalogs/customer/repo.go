package customer

import (
	"context"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/rollup"
)

// ListFilter contains filtering options for customer lists.
type ListFilter struct {
	// Search matches name or phone (case-insensitive substring)
	Search string

	// IncludeDeleted includes soft-deleted records
	IncludeDeleted bool

	Limit  int
	Offset int
}

// ListResult wraps a page of customers with the total count.
type ListResult struct {
	Items      []*Customer
	TotalCount int64
}

// Repository defines the interface for Customer persistence.
type Repository interface {
	Create(ctx context.Context, c *Customer) error

	// Update writes the editable fields (name, phone, address). The
	// derived rollup fields are untouched.
	Update(ctx context.Context, c *Customer) error

	GetByID(ctx context.Context, customerID id.ID) (*Customer, error)

	// GetByPhone retrieves a customer by the unique phone natural key.
	GetByPhone(ctx context.Context, phone string) (*Customer, error)

	List(ctx context.Context, filter ListFilter) (ListResult, error)
	SetDeletionMark(ctx context.Context, customerID id.ID, marked bool) error

	// PersistRollup overwrites the five derived fields. Reserved for the
	// rollup engine.
	PersistRollup(ctx context.Context, customerID id.ID, totals rollup.Totals) error
}
