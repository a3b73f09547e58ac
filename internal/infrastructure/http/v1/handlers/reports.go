package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/reports"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/http/v1/dto"
)

// ReportsHandler serves the reporting endpoints.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{BaseHandler: base, service: service}
}

// CustomerBalances handles GET /api/v1/reports/customer-balances
func (h *ReportsHandler) CustomerBalances(c *gin.Context) {
	var query dto.CustomerBalancesQuery
	if !h.BindQuery(c, &query) {
		return
	}

	report, err := h.service.GetCustomerBalances(c.Request.Context(), query.ToFilter())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, report)
}

// SalesSummary handles GET /api/v1/reports/sales-summary
func (h *ReportsHandler) SalesSummary(c *gin.Context) {
	var query dto.SalesSummaryQuery
	if !h.BindQuery(c, &query) {
		return
	}

	filter, err := query.ToFilter()
	if err != nil {
		h.Error(c, err)
		return
	}

	report, err := h.service.GetSalesSummary(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, report)
}

// StockOnHand handles GET /api/v1/reports/stock-on-hand
func (h *ReportsHandler) StockOnHand(c *gin.Context) {
	var query dto.StockOnHandQuery
	if !h.BindQuery(c, &query) {
		return
	}

	report, err := h.service.GetStockOnHand(c.Request.Context(), query.ToFilter())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, report)
}
