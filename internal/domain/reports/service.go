package reports

import (
	"context"
	"fmt"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/apperror"
)

// Service provides report generation operations.
type Service struct {
	repo Repository
}

// NewService creates a new reports service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetCustomerBalances generates the customer balances report from the
// derived rollup fields.
func (s *Service) GetCustomerBalances(ctx context.Context, filter CustomerBalancesFilter) (*CustomerBalancesReport, error) {
	// Set default pagination
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	if filter.Limit > 1000 {
		filter.Limit = 1000
	}

	// Default sort
	if filter.SortBy == "" {
		filter.SortBy = "due"
	}
	if filter.SortOrder == "" {
		filter.SortOrder = "desc"
	}

	report, err := s.repo.GetCustomerBalances(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get customer balances report: %w", err)
	}

	return report, nil
}

// GetSalesSummary generates the per-product sales summary for a period.
func (s *Service) GetSalesSummary(ctx context.Context, filter SalesSummaryFilter) (*SalesSummaryReport, error) {
	// Validate required dates
	if filter.FromDate.IsZero() || filter.ToDate.IsZero() {
		return nil, apperror.NewValidation("fromDate and toDate are required")
	}
	if filter.FromDate.After(filter.ToDate) {
		return nil, apperror.NewValidation("fromDate must be before toDate").
			WithDetail("fromDate", filter.FromDate).
			WithDetail("toDate", filter.ToDate)
	}

	// Set default pagination
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	if filter.Limit > 1000 {
		filter.Limit = 1000
	}

	report, err := s.repo.GetSalesSummary(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get sales summary report: %w", err)
	}

	return report, nil
}

// GetStockOnHand generates the stock on hand report.
func (s *Service) GetStockOnHand(ctx context.Context, filter StockOnHandFilter) (*StockOnHandReport, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	if filter.Limit > 1000 {
		filter.Limit = 1000
	}

	report, err := s.repo.GetStockOnHand(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get stock on hand report: %w", err)
	}

	return report, nil
}
