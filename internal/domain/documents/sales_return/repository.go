package sales_return

import (
	"context"
	"time"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/rollup"
)

// ListFilter contains filtering options for return lists.
type ListFilter struct {
	CustomerID    id.ID
	ProductID     id.ID
	CustomerPhone string

	DateFrom time.Time
	DateTo   time.Time

	Limit  int
	Offset int
}

// ListResult wraps a page of returns with the total count.
type ListResult struct {
	Items      []*Return
	TotalCount int64
}

// Repository defines the interface for Return persistence.
type Repository interface {
	Create(ctx context.Context, r *Return) error
	Update(ctx context.Context, r *Return) error
	GetByID(ctx context.Context, returnID id.ID) (*Return, error)
	List(ctx context.Context, filter ListFilter) (ListResult, error)
	Delete(ctx context.Context, returnID id.ID) error

	// LoadRollupRecords returns the rollup projection of every return.
	LoadRollupRecords(ctx context.Context) ([]rollup.ReturnRecord, error)
}
