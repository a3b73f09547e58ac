package report_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/types"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/reports"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/storage/postgres"
)

// Compile-time check that ReportRepo implements reports.Repository.
var _ reports.Repository = (*ReportRepo)(nil)

// ReportRepo implements reports.Repository with read-only queries.
type ReportRepo struct {
	txManager *postgres.TxManager
}

// NewReportRepo creates a new report repository.
func NewReportRepo(txManager *postgres.TxManager) *ReportRepo {
	return &ReportRepo{txManager: txManager}
}

// Builder returns a new squirrel builder with PostgreSQL placeholders.
func (r *ReportRepo) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

var balanceSortCols = map[string]string{
	"due":    "due",
	"amount": "amount",
	"profit": "profit",
	"name":   "name",
}

// GetCustomerBalances reads the derived rollup fields straight off the
// customer catalog.
func (r *ReportRepo) GetCustomerBalances(ctx context.Context, filter reports.CustomerBalancesFilter) (*reports.CustomerBalancesReport, error) {
	q := r.Builder().
		Select(
			"id AS customer_id",
			"name",
			"phone",
			"amount",
			"paid",
			"due",
			"return_amount",
			"profit",
		).
		From("cat_customers").
		Where(squirrel.Eq{"deletion_mark": false})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"phone": pattern},
		})
	}
	if filter.OnlyWithDue {
		q = q.Where(squirrel.Gt{"due": 0})
	}

	querier := r.txManager.GetQuerier(ctx)

	// Summary over the whole filtered set
	sumQ := r.Builder().
		Select(
			"COUNT(*)",
			"COALESCE(SUM(amount), 0)",
			"COALESCE(SUM(paid), 0)",
			"COALESCE(SUM(due), 0)",
			"COALESCE(SUM(profit), 0)",
		).
		FromSelect(q, "sub")

	sumSQL, sumArgs, err := sumQ.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build summary query: %w", err)
	}

	report := &reports.CustomerBalancesReport{}
	err = querier.QueryRow(ctx, sumSQL, sumArgs...).Scan(
		&report.TotalCount,
		&report.TotalAmount,
		&report.TotalPaid,
		&report.TotalDue,
		&report.TotalProfit,
	)
	if err != nil {
		return nil, fmt.Errorf("customer balances summary: %w", err)
	}

	sortCol, ok := balanceSortCols[filter.SortBy]
	if !ok {
		sortCol = "due"
	}
	direction := "DESC"
	if filter.SortOrder == "asc" {
		direction = "ASC"
	}
	q = q.OrderBy(sortCol + " " + direction)

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &report.Items, sql, args...); err != nil {
		return nil, fmt.Errorf("customer balances: %w", err)
	}

	return report, nil
}

// salesSummaryRow is the raw aggregation row before derived values.
type salesSummaryRow struct {
	ProductID        id.ID          `db:"product_id"`
	ProductCode      string         `db:"product_code"`
	ProductName      string         `db:"product_name"`
	QuantitySold     types.Quantity `db:"quantity_sold"`
	QuantityReturned types.Quantity `db:"quantity_returned"`
	SalesAmount      types.Amount   `db:"sales_amount"`
	ReturnAmount     types.Amount   `db:"return_amount"`
}

// GetSalesSummary aggregates sales and returns per product over a
// period. The two document tables are pre-aggregated per product before
// joining, otherwise a product with both sales and returns would fan
// out and double-count. Average rate is derived in Go so the integer
// sums stay the source of truth.
func (r *ReportRepo) GetSalesSummary(ctx context.Context, filter reports.SalesSummaryFilter) (*reports.SalesSummaryReport, error) {
	// Subqueries keep '?' placeholders; the outer builder renumbers
	// them into $n when the full statement is rendered.
	salesAgg := squirrel.StatementBuilder.
		Select(
			"product_id",
			"SUM(quantity) AS qty",
			"SUM(amount) AS amt",
		).
		From("doc_sales").
		Where(squirrel.GtOrEq{"date": filter.FromDate}).
		Where(squirrel.LtOrEq{"date": filter.ToDate}).
		GroupBy("product_id")

	returnsAgg := squirrel.StatementBuilder.
		Select(
			"product_id",
			"SUM(quantity) AS qty",
			"SUM(amount) AS amt",
		).
		From("doc_returns").
		Where(squirrel.GtOrEq{"date": filter.FromDate}).
		Where(squirrel.LtOrEq{"date": filter.ToDate}).
		GroupBy("product_id")

	salesSQL, salesArgs, err := salesAgg.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sales subquery: %w", err)
	}
	returnsSQL, returnsArgs, err := returnsAgg.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build returns subquery: %w", err)
	}

	q := r.Builder().
		Select(
			"p.id AS product_id",
			"p.code AS product_code",
			"p.name AS product_name",
			"COALESCE(s.qty, 0) AS quantity_sold",
			"COALESCE(rt.qty, 0) AS quantity_returned",
			"COALESCE(s.amt, 0) AS sales_amount",
			"COALESCE(rt.amt, 0) AS return_amount",
		).
		From("cat_products p").
		JoinClause("LEFT JOIN ("+salesSQL+") s ON s.product_id = p.id", salesArgs...).
		JoinClause("LEFT JOIN ("+returnsSQL+") rt ON rt.product_id = p.id", returnsArgs...).
		OrderBy("sales_amount DESC")

	if len(filter.ProductIDs) > 0 {
		q = q.Where(squirrel.Eq{"p.id": filter.ProductIDs})
	}
	if !filter.IncludeZero {
		q = q.Where("(s.qty IS NOT NULL OR rt.qty IS NOT NULL)")
	}

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []salesSummaryRow
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}

	report := &reports.SalesSummaryReport{
		FromDate:   filter.FromDate,
		ToDate:     filter.ToDate,
		TotalItems: len(rows),
	}

	for _, row := range rows {
		item := reports.SalesSummaryItem{
			ProductID:        row.ProductID,
			ProductCode:      row.ProductCode,
			ProductName:      row.ProductName,
			QuantitySold:     row.QuantitySold,
			QuantityReturned: row.QuantityReturned,
			SalesAmount:      row.SalesAmount,
			ReturnAmount:     row.ReturnAmount,
			NetAmount:        row.SalesAmount - row.ReturnAmount,
			AverageRate:      types.AverageRate(row.SalesAmount, row.QuantitySold),
		}
		report.Items = append(report.Items, item)

		report.TotalSold += item.QuantitySold
		report.TotalReturned += item.QuantityReturned
		report.TotalSales += item.SalesAmount
		report.TotalReturns += item.ReturnAmount
	}
	report.TotalNet = report.TotalSales - report.TotalReturns

	return report, nil
}

// stockOnHandRow is the raw join row before derived values.
type stockOnHandRow struct {
	ProductID   id.ID          `db:"product_id"`
	ProductCode string         `db:"product_code"`
	ProductName string         `db:"product_name"`
	Quantity    types.Quantity `db:"quantity"`
	Sales       types.Quantity `db:"sales"`
	Rate        types.Amount   `db:"rate"`
}

// GetStockOnHand joins the inventory balance with the product catalog.
func (r *ReportRepo) GetStockOnHand(ctx context.Context, filter reports.StockOnHandFilter) (*reports.StockOnHandReport, error) {
	q := r.Builder().
		Select(
			"p.id AS product_id",
			"p.code AS product_code",
			"p.name AS product_name",
			"i.quantity",
			"i.sales",
			"p.rate",
		).
		From("reg_inventory i").
		Join("cat_products p ON p.id = i.product_id").
		Where(squirrel.Eq{"p.deletion_mark": false}).
		OrderBy("p.name ASC")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"p.name": pattern},
			squirrel.ILike{"p.code": pattern},
		})
	}
	if filter.ExcludeZero {
		q = q.Where(squirrel.Gt{"i.quantity": 0})
	}

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []stockOnHandRow
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("stock on hand: %w", err)
	}

	report := &reports.StockOnHandReport{TotalItems: len(rows)}

	for _, row := range rows {
		item := reports.StockOnHandItem{
			ProductID:   row.ProductID,
			ProductCode: row.ProductCode,
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
			Sales:       row.Sales,
			Rate:        row.Rate,
			StockValue:  types.Amount(int64(row.Quantity) * int64(row.Rate)),
		}
		report.Items = append(report.Items, item)

		report.TotalQuantity += item.Quantity
		report.TotalValue += item.StockValue
	}

	return report, nil
}
