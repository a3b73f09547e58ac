package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/documents/sales_return"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/http/v1/dto"
)

// ReturnHandler serves the return document endpoints.
type ReturnHandler struct {
	*BaseHandler
	service *sales_return.Service
}

// NewReturnHandler creates a new return handler.
func NewReturnHandler(base *BaseHandler, service *sales_return.Service) *ReturnHandler {
	return &ReturnHandler{BaseHandler: base, service: service}
}

// Create handles POST /api/v1/returns
func (h *ReturnHandler) Create(c *gin.Context) {
	var req dto.CreateReturnRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, doc.ID.String())
}

// Update handles PUT /api/v1/returns/:id
func (h *ReturnHandler) Update(c *gin.Context) {
	returnID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateReturnRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.Update(c.Request.Context(), returnID, req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromReturn(doc))
}

// GetByID handles GET /api/v1/returns/:id
func (h *ReturnHandler) GetByID(c *gin.Context) {
	returnID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	doc, err := h.service.GetByID(c.Request.Context(), returnID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromReturn(doc))
}

// List handles GET /api/v1/returns
func (h *ReturnHandler) List(c *gin.Context) {
	var query dto.ReturnListQuery
	if !h.BindQuery(c, &query) {
		return
	}
	filter := query.ToFilter()

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{
		Items:      dto.FromReturns(result.Items),
		TotalCount: result.TotalCount,
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	})
}

// Delete handles DELETE /api/v1/returns/:id
func (h *ReturnHandler) Delete(c *gin.Context) {
	returnID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), returnID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
