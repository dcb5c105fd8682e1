// internal/services/alert_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pricetrack/pricetrack-backend/internal/models"
	"github.com/pricetrack/pricetrack-backend/internal/utils"
)

// AlertService reads price alerts. Alerts are only ever written by the listing
// price-update path.
type AlertService struct {
	db *gorm.DB
}

func NewAlertService(db *gorm.DB) *AlertService {
	return &AlertService{db: db}
}

func (s *AlertService) ListAlerts(params utils.PaginationParams) ([]models.Alert, int64, error) {
	query := s.db.Model(&models.Alert{})

	if params.Search != "" {
		query = query.Where("description ILIKE ?", "%"+params.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count alerts: %w", err)
	}

	query = utils.ApplySort(query, params, []string{"created_at", "alert_type"})
	query = utils.ApplyPagination(query, params)

	var alerts []models.Alert
	if err := query.Find(&alerts).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch alerts: %w", err)
	}

	return alerts, total, nil
}

func (s *AlertService) GetAlert(id uuid.UUID) (*models.Alert, error) {
	var alert models.Alert
	if err := s.db.Preload("Product").First(&alert, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &alert, nil
}
