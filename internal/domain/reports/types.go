// Package reports provides report generation services.
package reports

import (
	"time"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/types"
)

// --- Customer Balances Report ---

// CustomerBalancesFilter defines filter for the customer balances report.
type CustomerBalancesFilter struct {
	// Search matches name or phone
	Search string

	// OnlyWithDue keeps only customers with an outstanding balance
	OnlyWithDue bool

	// Sorting: "due", "amount", "profit", "name" (default "due")
	SortBy    string
	SortOrder string // "asc", "desc"

	// Pagination
	Limit  int
	Offset int
}

// CustomerBalanceItem represents a single row in the balances report.
type CustomerBalanceItem struct {
	CustomerID id.ID  `json:"customerId"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`

	Amount       types.Amount `json:"amount"`
	Paid         types.Amount `json:"paid"`
	Due          types.Amount `json:"due"`
	ReturnAmount types.Amount `json:"returnAmount"`
	Profit       types.Amount `json:"profit"`
}

// CustomerBalancesReport represents the full balances report.
type CustomerBalancesReport struct {
	Items      []CustomerBalanceItem `json:"items"`
	TotalCount int                   `json:"totalCount"`

	// Summary across the whole filtered set, not just the page
	TotalAmount types.Amount `json:"totalAmount"`
	TotalPaid   types.Amount `json:"totalPaid"`
	TotalDue    types.Amount `json:"totalDue"`
	TotalProfit types.Amount `json:"totalProfit"`
}

// --- Sales Summary Report ---

// SalesSummaryFilter defines filter for the per-product sales summary.
type SalesSummaryFilter struct {
	// Period (required)
	FromDate time.Time
	ToDate   time.Time

	// Filters
	ProductIDs []id.ID

	// Include products with no movement in the period
	IncludeZero bool

	// Pagination
	Limit  int
	Offset int
}

// SalesSummaryItem represents a single product row in the summary.
type SalesSummaryItem struct {
	ProductID   id.ID  `json:"productId"`
	ProductCode string `json:"productCode"`
	ProductName string `json:"productName"`

	QuantitySold     types.Quantity `json:"quantitySold"`
	QuantityReturned types.Quantity `json:"quantityReturned"`

	SalesAmount  types.Amount `json:"salesAmount"`
	ReturnAmount types.Amount `json:"returnAmount"`
	NetAmount    types.Amount `json:"netAmount"`

	// AverageRate = salesAmount / quantitySold, fractional
	AverageRate types.Ratio `json:"averageRate"`
}

// SalesSummaryReport represents the full sales summary.
type SalesSummaryReport struct {
	FromDate   time.Time          `json:"fromDate"`
	ToDate     time.Time          `json:"toDate"`
	Items      []SalesSummaryItem `json:"items"`
	TotalItems int                `json:"totalItems"`

	// Summary totals
	TotalSold     types.Quantity `json:"totalSold"`
	TotalReturned types.Quantity `json:"totalReturned"`
	TotalSales    types.Amount   `json:"totalSales"`
	TotalReturns  types.Amount   `json:"totalReturns"`
	TotalNet      types.Amount   `json:"totalNet"`
}

// --- Stock On Hand Report ---

// StockOnHandFilter defines filter for the stock on hand report.
type StockOnHandFilter struct {
	Search string

	// Exclude products with zero stock
	ExcludeZero bool

	// Pagination
	Limit  int
	Offset int
}

// StockOnHandItem represents a single row in the stock report.
type StockOnHandItem struct {
	ProductID   id.ID  `json:"productId"`
	ProductCode string `json:"productCode"`
	ProductName string `json:"productName"`

	Quantity types.Quantity `json:"quantity"`
	Sales    types.Quantity `json:"sales"`

	// Rate is the product's current selling rate
	Rate types.Amount `json:"rate"`

	// StockValue = quantity * rate
	StockValue types.Amount `json:"stockValue"`
}

// StockOnHandReport represents the full stock on hand report.
type StockOnHandReport struct {
	Items      []StockOnHandItem `json:"items"`
	TotalItems int               `json:"totalItems"`

	TotalQuantity types.Quantity `json:"totalQuantity"`
	TotalValue    types.Amount   `json:"totalValue"`
}
