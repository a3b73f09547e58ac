package document_repo

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/documents/sales_return"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/rollup"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/storage/postgres"
)

const returnTable = "doc_returns"

// Compile-time check that ReturnRepo implements sales_return.Repository.
var _ sales_return.Repository = (*ReturnRepo)(nil)

// ReturnRepo implements sales_return.Repository.
type ReturnRepo struct {
	*BaseDocumentRepo[*sales_return.Return]
	txManager *postgres.TxManager
}

// NewReturnRepo creates a new return repository.
func NewReturnRepo(txManager *postgres.TxManager) *ReturnRepo {
	return &ReturnRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*sales_return.Return](
			txManager,
			returnTable,
			postgres.ExtractDBColumns[sales_return.Return](),
			func() *sales_return.Return { return &sales_return.Return{} },
		),
		txManager: txManager,
	}
}

// List retrieves returns with filtering.
func (r *ReturnRepo) List(ctx context.Context, filter sales_return.ListFilter) (sales_return.ListResult, error) {
	items, total, err := r.list(ctx, listOptions{
		customerID:    filter.CustomerID,
		productID:     filter.ProductID,
		customerPhone: filter.CustomerPhone,
		dateFrom:      filter.DateFrom,
		dateTo:        filter.DateTo,
		limit:         filter.Limit,
		offset:        filter.Offset,
	})
	if err != nil {
		return sales_return.ListResult{}, err
	}

	return sales_return.ListResult{Items: items, TotalCount: total}, nil
}

// LoadRollupRecords returns the rollup projection of every return.
func (r *ReturnRepo) LoadRollupRecords(ctx context.Context) ([]rollup.ReturnRecord, error) {
	var records []rollup.ReturnRecord

	querier := r.txManager.GetQuerier(ctx)
	err := pgxscan.Select(ctx, querier, &records, `
		SELECT customer_id, amount
		FROM doc_returns
	`)
	if err != nil {
		return nil, fmt.Errorf("load return rollup records: %w", err)
	}

	return records, nil
}
