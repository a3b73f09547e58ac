package document_repo

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/documents/sale"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/rollup"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/storage/postgres"
)

const saleTable = "doc_sales"

// Compile-time check that SaleRepo implements sale.Repository.
var _ sale.Repository = (*SaleRepo)(nil)

// SaleRepo implements sale.Repository.
type SaleRepo struct {
	*BaseDocumentRepo[*sale.Sale]
	txManager *postgres.TxManager
}

// NewSaleRepo creates a new sale repository.
func NewSaleRepo(txManager *postgres.TxManager) *SaleRepo {
	return &SaleRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*sale.Sale](
			txManager,
			saleTable,
			postgres.ExtractDBColumns[sale.Sale](),
			func() *sale.Sale { return &sale.Sale{} },
		),
		txManager: txManager,
	}
}

// List retrieves sales with filtering.
func (r *SaleRepo) List(ctx context.Context, filter sale.ListFilter) (sale.ListResult, error) {
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
		return sale.ListResult{}, err
	}

	return sale.ListResult{Items: items, TotalCount: total}, nil
}

// LoadRollupRecords returns the rollup projection of every sale.
func (r *SaleRepo) LoadRollupRecords(ctx context.Context) ([]rollup.SaleRecord, error) {
	var records []rollup.SaleRecord

	querier := r.txManager.GetQuerier(ctx)
	err := pgxscan.Select(ctx, querier, &records, `
		SELECT customer_id, amount, paid
		FROM doc_sales
	`)
	if err != nil {
		return nil, fmt.Errorf("load sale rollup records: %w", err)
	}

	return records, nil
}
