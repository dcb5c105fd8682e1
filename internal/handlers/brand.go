// internal/handlers/brand.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/pricetrack/pricetrack-backend/internal/services"
	"github.com/pricetrack/pricetrack-backend/internal/utils"
)

type BrandHandler struct {
	catalogService *services.CatalogService
}

func NewBrandHandler(catalogService *services.CatalogService) *BrandHandler {
	return &BrandHandler{catalogService: catalogService}
}

// GET /brands
func (h *BrandHandler) GetBrands(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	brands, total, err := h.catalogService.ListBrands(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SetPaginationHeaders(c, total, params)
	utils.SuccessResponse(c, brands)
}

// GET /brands/:id
func (h *BrandHandler) GetBrand(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	brand, err := h.catalogService.GetBrand(id)
	if err != nil {
		serviceErrorResponse(c, err, "")
		return
	}

	utils.SuccessResponse(c, brand)
}

// POST /brands
func (h *BrandHandler) CreateBrand(c *gin.Context) {
	var req services.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	brand, err := h.catalogService.CreateBrand(&req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			utils.ConflictResponse(c, "Brand with this name already exists")
			return
		}
		serviceErrorResponse(c, err, "")
		return
	}

	utils.CreatedResponse(c, brand)
}

// PUT /brands/:id and PATCH /brands/:id
func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	brand, err := h.catalogService.UpdateBrand(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			utils.ConflictResponse(c, "Brand with this name already exists")
			return
		}
		serviceErrorResponse(c, err, "")
		return
	}

	utils.SuccessResponse(c, brand)
}

// DELETE /brands/:id
func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteBrand(id); err != nil {
		serviceErrorResponse(c, err, "")
		return
	}

	utils.NoContentResponse(c)
}
