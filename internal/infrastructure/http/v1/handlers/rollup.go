package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/rollup"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/cache"
	"github.com/muhammadrohan3/storeManagementSystem/pkg/logger"
)

// RollupHandler exposes a manual recompute trigger. The worker runs the
// same cycle off outbox events; this endpoint exists for operations and
// backfills.
type RollupHandler struct {
	*BaseHandler
	service  *rollup.Service
	balances cache.BalanceCache
}

// NewRollupHandler creates a new rollup handler.
func NewRollupHandler(base *BaseHandler, service *rollup.Service, balances cache.BalanceCache) *RollupHandler {
	return &RollupHandler{BaseHandler: base, service: service, balances: balances}
}

// Recompute handles POST /api/v1/rollup/recompute
func (h *RollupHandler) Recompute(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.service.Recompute(ctx); err != nil {
		h.Error(c, err)
		return
	}

	if err := h.balances.InvalidateAll(ctx); err != nil {
		logger.Warn(ctx, "balance cache invalidation failed", "error", err)
	}

	h.Success(c, "rollup recomputed")
}
