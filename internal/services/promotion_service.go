// internal/services/promotion_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pricetrack/pricetrack-backend/internal/models"
	"github.com/pricetrack/pricetrack-backend/internal/utils"
)

type PromotionService struct {
	db *gorm.DB
}

type CreatePromotionRequest struct {
	Name            string     `json:"name" validate:"required,max=100"`
	PromotionType   string     `json:"promotion_type" validate:"required,oneof=FIXED PERCENTAGE"`
	PromotionOnType string     `json:"promotion_on_type" validate:"required,oneof=BRAND PRODUCT RETAIL_STORE RETAILER CUSTOM"`
	Value           *float64   `json:"value" validate:"required"`
	StartDate       string     `json:"start_date" validate:"required,dateonly"`
	EndDate         string     `json:"end_date" validate:"required,dateonly"`
	BrandID         *uuid.UUID `json:"brand"`
	ProductID       *uuid.UUID `json:"product"`
	RetailerID      *uuid.UUID `json:"retailer"`
	RetailStoreID   *uuid.UUID `json:"retail_store"`
}

func NewPromotionService(db *gorm.DB) *PromotionService {
	return &PromotionService{db: db}
}

func (s *PromotionService) ListPromotions(params utils.PaginationParams) ([]models.Promotion, int64, error) {
	query := s.db.Model(&models.Promotion{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count promotions: %w", err)
	}

	query = utils.ApplySort(query, params, []string{"created_at", "name", "start_date", "end_date"})
	query = utils.ApplyPagination(query, params)

	var promotions []models.Promotion
	if err := query.Find(&promotions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch promotions: %w", err)
	}

	return promotions, total, nil
}

func (s *PromotionService) GetPromotion(id uuid.UUID) (*models.Promotion, error) {
	var promotion models.Promotion
	if err := s.db.First(&promotion, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &promotion, nil
}

// RunPromotion is the only way promotions are created. The caller's token must
// resolve to a stored credential before the promotion is accepted.
func (s *PromotionService) RunPromotion(tokenKey string, req *CreatePromotionRequest) (*models.Promotion, error) {
	if tokenKey == "" {
		return nil, ErrMissingToken
	}

	var token models.AuthToken
	if err := s.db.First(&token, "key = ?", tokenKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.Warn("Rejected promotion create with unknown token")
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	startDate, err := time.ParseInLocation(time.DateOnly, req.StartDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date", ErrInvalidInput)
	}
	endDate, err := time.ParseInLocation(time.DateOnly, req.EndDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date", ErrInvalidInput)
	}

	promotion := &models.Promotion{
		Name:            req.Name,
		PromotionType:   models.PromotionType(req.PromotionType),
		PromotionOnType: models.PromotionScope(req.PromotionOnType),
		Value:           *req.Value,
		StartDate:       startDate,
		EndDate:         endDate,
		BrandID:         req.BrandID,
		ProductID:       req.ProductID,
		RetailerID:      req.RetailerID,
		RetailStoreID:   req.RetailStoreID,
	}

	if err := s.db.Create(promotion).Error; err != nil {
		return nil, fmt.Errorf("failed to create promotion: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"promotion_id": promotion.ID,
		"name":         promotion.Name,
		"user_id":      token.UserID,
	}).Info("Promotion created")

	return promotion, nil
}
