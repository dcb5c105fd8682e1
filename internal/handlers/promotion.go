// internal/handlers/promotion.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pricetrack/pricetrack-backend/internal/middleware"
	"github.com/pricetrack/pricetrack-backend/internal/services"
	"github.com/pricetrack/pricetrack-backend/internal/utils"
)

type PromotionHandler struct {
	promotionService *services.PromotionService
}

func NewPromotionHandler(promotionService *services.PromotionService) *PromotionHandler {
	return &PromotionHandler{promotionService: promotionService}
}

// GET /promotions
func (h *PromotionHandler) GetPromotions(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	promotions, total, err := h.promotionService.ListPromotions(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SetPaginationHeaders(c, total, params)
	utils.SuccessResponse(c, promotions)
}

// GET /promotions/:id
func (h *PromotionHandler) GetPromotion(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	promotion, err := h.promotionService.GetPromotion(id)
	if err != nil {
		serviceErrorResponse(c, err, "")
		return
	}

	utils.SuccessResponse(c, promotion)
}

// POST /promotions
//
// Promotions are never created through the plain collection path.
func (h *PromotionHandler) CreateProhibited(c *gin.Context) {
	logrus.Warn("Rejected promotion create on collection path")
	utils.NotFoundResponse(c, "Valid endpoint is /promotions/create")
}

// POST /promotions/create
func (h *PromotionHandler) RunPromotion(c *gin.Context) {
	tokenKey := middleware.TokenFromHeader(c)
	if tokenKey == "" {
		logrus.Warn("Rejected promotion create without token")
		utils.BadRequestResponse(c, "Missing Authorization Token")
		return
	}

	var req services.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if _, err := h.promotionService.RunPromotion(tokenKey, &req); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidToken):
			utils.BadRequestResponse(c, "Invalid Authorization Token")
		case errors.Is(err, services.ErrInvalidInput):
			utils.BadRequestResponse(c, err.Error())
		default:
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	utils.SuccessResponse(c, req)
}
