package product

import (
	"context"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
)

// ListFilter contains filtering options for product lists.
type ListFilter struct {
	// Search matches code or name (case-insensitive substring)
	Search string

	// IncludeDeleted includes soft-deleted records
	IncludeDeleted bool

	Limit  int
	Offset int
}

// ListResult wraps a page of products with the total count.
type ListResult struct {
	Items      []*Product
	TotalCount int64
}

// Repository defines the interface for Product persistence.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, productID id.ID) (*Product, error)

	// GetByCode retrieves a product by its unique code (natural key).
	GetByCode(ctx context.Context, code string) (*Product, error)

	List(ctx context.Context, filter ListFilter) (ListResult, error)
	SetDeletionMark(ctx context.Context, productID id.ID, marked bool) error
}
