// internal/handlers/listing.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pricetrack/pricetrack-backend/internal/services"
	"github.com/pricetrack/pricetrack-backend/internal/utils"
)

// ListingHandler serves the "products" resource: per-store listings.
// Listings can be read, created and updated, never deleted.
type ListingHandler struct {
	listingService *services.ListingService
}

func NewListingHandler(listingService *services.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// GET /products
func (h *ListingHandler) GetListings(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	listings, total, err := h.listingService.ListListings(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SetPaginationHeaders(c, total, params)
	utils.SuccessResponse(c, listings)
}

// GET /products/all
func (h *ListingHandler) GetAllProducts(c *gin.Context) {
	summaries, err := h.listingService.ListAllProducts()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, summaries)
}

// GET /products/:id
func (h *ListingHandler) GetListing(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	listing, err := h.listingService.GetListing(id)
	if err != nil {
		serviceErrorResponse(c, err, "")
		return
	}

	utils.SuccessResponse(c, listing)
}

// POST /products
func (h *ListingHandler) CreateListing(c *gin.Context) {
	var req services.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	listing, err := h.listingService.CreateListing(&req)
	if err != nil {
		serviceErrorResponse(c, err, "")
		return
	}

	utils.CreatedResponse(c, listing)
}

// PUT /products/:id and PATCH /products/:id
//
// A price change here is what issues price alerts, so every update carries the
// full field set and malformed input fails before anything is written.
func (h *ListingHandler) UpdateListing(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id")
		return
	}

	var req services.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Exception updating product")
		return
	}

	listing, err := h.listingService.UpdateListing(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.NotFoundResponse(c, "Invalid product id")
		case errors.Is(err, services.ErrInvalidInput):
			utils.BadRequestResponse(c, "Exception updating product")
		default:
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	utils.SuccessResponse(c, listing)
}
