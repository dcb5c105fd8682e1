// internal/handlers/retailer.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/pricetrack/pricetrack-backend/internal/services"
	"github.com/pricetrack/pricetrack-backend/internal/utils"
)

type RetailerHandler struct {
	catalogService *services.CatalogService
}

func NewRetailerHandler(catalogService *services.CatalogService) *RetailerHandler {
	return &RetailerHandler{catalogService: catalogService}
}

// GET /retailers
func (h *RetailerHandler) GetRetailers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	retailers, total, err := h.catalogService.ListRetailers(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SetPaginationHeaders(c, total, params)
	utils.SuccessResponse(c, retailers)
}

// GET /retailers/:id
func (h *RetailerHandler) GetRetailer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	retailer, err := h.catalogService.GetRetailer(id)
	if err != nil {
		serviceErrorResponse(c, err, "")
		return
	}

	utils.SuccessResponse(c, retailer)
}

// POST /retailers
func (h *RetailerHandler) CreateRetailer(c *gin.Context) {
	var req services.CreateNamedEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	retailer, err := h.catalogService.CreateRetailer(&req)
	if err != nil {
		serviceErrorResponse(c, err, "")
		return
	}

	utils.CreatedResponse(c, retailer)
}

// PUT /retailers/:id and PATCH /retailers/:id
func (h *RetailerHandler) UpdateRetailer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateNamedEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	retailer, err := h.catalogService.UpdateRetailer(id, &req)
	if err != nil {
		serviceErrorResponse(c, err, "")
		return
	}

	utils.SuccessResponse(c, retailer)
}

// DELETE /retailers/:id
func (h *RetailerHandler) DeleteRetailer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteRetailer(id); err != nil {
		serviceErrorResponse(c, err, "")
		return
	}

	utils.NoContentResponse(c)
}
