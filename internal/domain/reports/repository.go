package reports

import (
	"context"
)

// Repository defines report data access interface.
type Repository interface {
	GetCustomerBalances(ctx context.Context, filter CustomerBalancesFilter) (*CustomerBalancesReport, error)
	GetSalesSummary(ctx context.Context, filter SalesSummaryFilter) (*SalesSummaryReport, error)
	GetStockOnHand(ctx context.Context, filter StockOnHandFilter) (*StockOnHandReport, error)
}
