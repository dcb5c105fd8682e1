// internal/handlers/product_detail.go
package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pricetrack/pricetrack-backend/internal/services"
	"github.com/pricetrack/pricetrack-backend/internal/utils"
)

type ProductDetailHandler struct {
	catalogService      *services.CatalogService
	availabilityService *services.AvailabilityService
}

func NewProductDetailHandler(catalogService *services.CatalogService, availabilityService *services.AvailabilityService) *ProductDetailHandler {
	return &ProductDetailHandler{
		catalogService:      catalogService,
		availabilityService: availabilityService,
	}
}

// GET /product-details
func (h *ProductDetailHandler) GetProductDetails(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	details, total, err := h.catalogService.ListProductDetails(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SetPaginationHeaders(c, total, params)
	utils.SuccessResponse(c, details)
}

// GET /product-details/:id
func (h *ProductDetailHandler) GetProductDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	detail, err := h.catalogService.GetProductDetail(id)
	if err != nil {
		serviceErrorResponse(c, err, "")
		return
	}

	utils.SuccessResponse(c, detail)
}

// POST /product-details
func (h *ProductDetailHandler) CreateProductDetail(c *gin.Context) {
	var req services.CreateProductDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	detail, err := h.catalogService.CreateProductDetail(&req)
	if err != nil {
		serviceErrorResponse(c, err, "")
		return
	}

	utils.CreatedResponse(c, detail)
}

// PUT /product-details/:id and PATCH /product-details/:id
func (h *ProductDetailHandler) UpdateProductDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateProductDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	detail, err := h.catalogService.UpdateProductDetail(id, &req)
	if err != nil {
		serviceErrorResponse(c, err, "")
		return
	}

	utils.SuccessResponse(c, detail)
}

// DELETE /product-details/:id
func (h *ProductDetailHandler) DeleteProductDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteProductDetail(id); err != nil {
		serviceErrorResponse(c, err, "")
		return
	}

	utils.NoContentResponse(c)
}

// GET /product-details/product/:id
//
// The availability view: where the product is in stock, the minimum price per
// store, and the active promotions that apply. The response is an array whose
// first element is the store availability header and whose remaining elements
// are the per-store aggregate rows.
func (h *ProductDetailHandler) GetProductAvailability(c *gin.Context) {
	idStr := c.Param("id")
	if idStr == "" {
		utils.BadRequestResponse(c, "Please provide product id.")
		return
	}

	productID, err := uuid.Parse(idStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id")
		return
	}

	view, err := h.availabilityService.Resolve(productID, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrMissingParameter) {
			utils.BadRequestResponse(c, "Please provide product id.")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	payload := make([]interface{}, 0, len(view.Rows)+1)
	payload = append(payload, view.Availability)
	for _, row := range view.Rows {
		payload = append(payload, row)
	}

	utils.SuccessResponse(c, payload)
}
