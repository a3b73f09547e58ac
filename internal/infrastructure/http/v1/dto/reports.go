package dto

import (
	"time"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/apperror"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/reports"
)

// CustomerBalancesQuery contains query parameters for the balances report.
type CustomerBalancesQuery struct {
	Search      string `form:"search"`
	OnlyWithDue bool   `form:"onlyWithDue"`
	SortBy      string `form:"sortBy" binding:"omitempty,oneof=due amount profit name"`
	SortOrder   string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
	Limit       int    `form:"limit" binding:"omitempty,min=1,max=1000"`
	Offset      int    `form:"offset" binding:"omitempty,min=0"`
}

// ToFilter converts the query into a report filter.
func (q CustomerBalancesQuery) ToFilter() reports.CustomerBalancesFilter {
	return reports.CustomerBalancesFilter{
		Search:      q.Search,
		OnlyWithDue: q.OnlyWithDue,
		SortBy:      q.SortBy,
		SortOrder:   q.SortOrder,
		Limit:       q.Limit,
		Offset:      q.Offset,
	}
}

// SalesSummaryQuery contains query parameters for the sales summary report.
type SalesSummaryQuery struct {
	FromDate    time.Time `form:"fromDate" time_format:"2006-01-02" binding:"required"`
	ToDate      time.Time `form:"toDate" time_format:"2006-01-02" binding:"required"`
	ProductIDs  []string  `form:"productId"`
	IncludeZero bool      `form:"includeZero"`
	Limit       int       `form:"limit" binding:"omitempty,min=1,max=1000"`
	Offset      int       `form:"offset" binding:"omitempty,min=0"`
}

// ToFilter converts the query into a report filter.
func (q SalesSummaryQuery) ToFilter() (reports.SalesSummaryFilter, error) {
	f := reports.SalesSummaryFilter{
		FromDate:    q.FromDate,
		ToDate:      q.ToDate,
		IncludeZero: q.IncludeZero,
		Limit:       q.Limit,
		Offset:      q.Offset,
	}
	for _, raw := range q.ProductIDs {
		pid, err := id.Parse(raw)
		if err != nil {
			return f, apperror.NewValidation("invalid product id: " + raw)
		}
		f.ProductIDs = append(f.ProductIDs, pid)
	}
	return f, nil
}

// StockOnHandQuery contains query parameters for the stock report.
type StockOnHandQuery struct {
	Search      string `form:"search"`
	ExcludeZero bool   `form:"excludeZero"`
	Limit       int    `form:"limit" binding:"omitempty,min=1,max=1000"`
	Offset      int    `form:"offset" binding:"omitempty,min=0"`
}

// ToFilter converts the query into a report filter.
func (q StockOnHandQuery) ToFilter() reports.StockOnHandFilter {
	return reports.StockOnHandFilter{
		Search:      q.Search,
		ExcludeZero: q.ExcludeZero,
		Limit:       q.Limit,
		Offset:      q.Offset,
	}
}
