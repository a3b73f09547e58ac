package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/apperror"
)

type fakeReportRepo struct {
	balancesFilter CustomerBalancesFilter
	summaryFilter  SalesSummaryFilter
	stockFilter    StockOnHandFilter
}

func (r *fakeReportRepo) GetCustomerBalances(_ context.Context, filter CustomerBalancesFilter) (*CustomerBalancesReport, error) {
	r.balancesFilter = filter
	return &CustomerBalancesReport{}, nil
}

func (r *fakeReportRepo) GetSalesSummary(_ context.Context, filter SalesSummaryFilter) (*SalesSummaryReport, error) {
	r.summaryFilter = filter
	return &SalesSummaryReport{}, nil
}

func (r *fakeReportRepo) GetStockOnHand(_ context.Context, filter StockOnHandFilter) (*StockOnHandReport, error) {
	r.stockFilter = filter
	return &StockOnHandReport{}, nil
}

func TestGetCustomerBalances_Defaults(t *testing.T) {
	repo := &fakeReportRepo{}
	service := NewService(repo)

	_, err := service.GetCustomerBalances(context.Background(), CustomerBalancesFilter{})
	require.NoError(t, err)

	assert.Equal(t, 100, repo.balancesFilter.Limit)
	assert.Equal(t, "due", repo.balancesFilter.SortBy)
	assert.Equal(t, "desc", repo.balancesFilter.SortOrder)
}

func TestGetSalesSummary_MissingDates(t *testing.T) {
	service := NewService(&fakeReportRepo{})

	_, err := service.GetSalesSummary(context.Background(), SalesSummaryFilter{})

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestGetSalesSummary_InvertedPeriod(t *testing.T) {
	service := NewService(&fakeReportRepo{})
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := service.GetSalesSummary(context.Background(), SalesSummaryFilter{
		FromDate: from,
		ToDate:   from.AddDate(0, 0, -7),
	})

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestGetSalesSummary_CapsLimit(t *testing.T) {
	repo := &fakeReportRepo{}
	service := NewService(repo)
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := service.GetSalesSummary(context.Background(), SalesSummaryFilter{
		FromDate: from,
		ToDate:   from.AddDate(0, 1, 0),
		Limit:    5000,
	})
	require.NoError(t, err)

	assert.Equal(t, 1000, repo.summaryFilter.Limit)
}
