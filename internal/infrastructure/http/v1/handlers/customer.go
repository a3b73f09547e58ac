package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/catalogs/customer"
	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/rollup"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/cache"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/http/v1/dto"
	"github.com/muhammadrohan3/storeManagementSystem/pkg/logger"
)

const balanceCacheTTL = 5 * time.Minute

// CustomerHandler serves the customer catalog endpoints.
type CustomerHandler struct {
	*BaseHandler
	service  *customer.Service
	balances cache.BalanceCache
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(base *BaseHandler, service *customer.Service, balances cache.BalanceCache) *CustomerHandler {
	return &CustomerHandler{BaseHandler: base, service: service, balances: balances}
}

// Create handles POST /api/v1/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cust := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), cust); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, cust.ID.String())
}

// Update handles PUT /api/v1/customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	customerID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCustomerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cust, err := h.service.GetByID(c.Request.Context(), customerID)
	if err != nil {
		h.Error(c, err)
		return
	}
	req.ApplyTo(cust)

	if err := h.service.Update(c.Request.Context(), cust); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCustomer(cust))
}

// GetByID handles GET /api/v1/customers/:id
func (h *CustomerHandler) GetByID(c *gin.Context) {
	customerID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	cust, err := h.service.GetByID(c.Request.Context(), customerID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCustomer(cust))
}

// GetBalance handles GET /api/v1/customers/:id/balance
// Serves the derived totals from cache when possible; a rollup cycle
// invalidates the cache after every recompute.
func (h *CustomerHandler) GetBalance(c *gin.Context) {
	customerID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if totals, found, err := h.balances.Get(ctx, customerID); err == nil && found {
		h.OK(c, totals)
		return
	} else if err != nil {
		logger.Warn(ctx, "balance cache read failed", "error", err)
	}

	cust, err := h.service.GetByID(ctx, customerID)
	if err != nil {
		h.Error(c, err)
		return
	}

	totals := &rollup.Totals{
		Amount:       cust.Amount,
		Paid:         cust.Paid,
		Due:          cust.Due,
		ReturnAmount: cust.ReturnAmount,
		Profit:       cust.Profit,
	}

	if err := h.balances.Set(ctx, customerID, totals, balanceCacheTTL); err != nil {
		logger.Warn(ctx, "balance cache write failed", "error", err)
	}

	h.OK(c, totals)
}

// List handles GET /api/v1/customers
func (h *CustomerHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if !h.BindQuery(c, &query) {
		return
	}
	query.Defaults()

	result, err := h.service.List(c.Request.Context(), customer.ListFilter{
		Search:         query.Search,
		IncludeDeleted: query.IncludeDeleted,
		Limit:          query.Limit,
		Offset:         query.Offset,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{
		Items:      dto.FromCustomers(result.Items),
		TotalCount: result.TotalCount,
		Limit:      query.Limit,
		Offset:     query.Offset,
	})
}

// Delete handles DELETE /api/v1/customers/:id (soft delete)
func (h *CustomerHandler) Delete(c *gin.Context) {
	customerID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), customerID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
