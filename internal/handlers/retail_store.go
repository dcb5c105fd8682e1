// internal/handlers/retail_store.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/pricetrack/pricetrack-backend/internal/services"
	"github.com/pricetrack/pricetrack-backend/internal/utils"
)

type RetailStoreHandler struct {
	catalogService *services.CatalogService
}

func NewRetailStoreHandler(catalogService *services.CatalogService) *RetailStoreHandler {
	return &RetailStoreHandler{catalogService: catalogService}
}

// GET /retail-stores
func (h *RetailStoreHandler) GetRetailStores(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	stores, total, err := h.catalogService.ListRetailStores(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SetPaginationHeaders(c, total, params)
	utils.SuccessResponse(c, stores)
}

// GET /retail-stores/:id
func (h *RetailStoreHandler) GetRetailStore(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	store, err := h.catalogService.GetRetailStore(id)
	if err != nil {
		serviceErrorResponse(c, err, "")
		return
	}

	utils.SuccessResponse(c, store)
}

// POST /retail-stores
func (h *RetailStoreHandler) CreateRetailStore(c *gin.Context) {
	var req services.CreateNamedEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	store, err := h.catalogService.CreateRetailStore(&req)
	if err != nil {
		serviceErrorResponse(c, err, "")
		return
	}

	utils.CreatedResponse(c, store)
}

// PUT /retail-stores/:id and PATCH /retail-stores/:id
func (h *RetailStoreHandler) UpdateRetailStore(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateNamedEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	store, err := h.catalogService.UpdateRetailStore(id, &req)
	if err != nil {
		serviceErrorResponse(c, err, "")
		return
	}

	utils.SuccessResponse(c, store)
}

// DELETE /retail-stores/:id
func (h *RetailStoreHandler) DeleteRetailStore(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteRetailStore(id); err != nil {
		serviceErrorResponse(c, err, "")
		return
	}

	utils.NoContentResponse(c)
}
