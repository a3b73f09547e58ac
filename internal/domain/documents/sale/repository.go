package sale

import (
	"context"
	"time"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/rollup"
)

// ListFilter contains filtering options for sale lists.
type ListFilter struct {
	// CustomerID limits to one customer
	CustomerID id.ID

	// ProductID limits to one product
	ProductID id.ID

	// CustomerPhone matches through the customer catalog
	CustomerPhone string

	// DateFrom/DateTo bound the business date (inclusive)
	DateFrom time.Time
	DateTo   time.Time

	Limit  int
	Offset int
}

// ListResult wraps a page of sales with the total count.
type ListResult struct {
	Items      []*Sale
	TotalCount int64
}

// Repository defines the interface for Sale persistence.
type Repository interface {
	Create(ctx context.Context, s *Sale) error
	Update(ctx context.Context, s *Sale) error
	GetByID(ctx context.Context, saleID id.ID) (*Sale, error)
	List(ctx context.Context, filter ListFilter) (ListResult, error)

	// Delete removes the sale row. The ledger entry is removed by the
	// caller in the same transaction.
	Delete(ctx context.Context, saleID id.ID) error

	// LoadRollupRecords returns the rollup projection of every sale.
	LoadRollupRecords(ctx context.Context) ([]rollup.SaleRecord, error)
}
