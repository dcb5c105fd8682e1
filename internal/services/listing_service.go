// internal/services/listing_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pricetrack/pricetrack-backend/internal/models"
	"github.com/pricetrack/pricetrack-backend/internal/utils"
)

type ListingService struct {
	db *gorm.DB
}

type CreateListingRequest struct {
	ProductID     uuid.UUID `json:"product_id" validate:"required"`
	RetailerID    uuid.UUID `json:"retailer_id" validate:"required"`
	RetailStoreID uuid.UUID `json:"retail_store_id" validate:"required"`
	Price         *float64  `json:"price" validate:"required,min=0"`
	Quantity      *int      `json:"quantity" validate:"omitempty,min=0"`
}

// UpdateListingRequest is the full field set a listing update overwrites.
type UpdateListingRequest struct {
	ProductID     uuid.UUID `json:"product_id" validate:"required"`
	RetailerID    uuid.UUID `json:"retailer_id" validate:"required"`
	RetailStoreID uuid.UUID `json:"retail_store_id" validate:"required"`
	Price         *float64  `json:"price" validate:"required,min=0"`
	Quantity      *int      `json:"quantity" validate:"required,min=0"`
}

// ProductSummary is one row of the flat all-products listing.
type ProductSummary struct {
	ProductID uuid.UUID `json:"_id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
}

func NewListingService(db *gorm.DB) *ListingService {
	return &ListingService{db: db}
}

func (s *ListingService) ListListings(params utils.PaginationParams) ([]models.Listing, int64, error) {
	query := s.db.Model(&models.Listing{}).
		Preload("Product").Preload("Retailer").Preload("RetailStore")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count listings: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "price", "quantity"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var listings []models.Listing
	if err := query.Find(&listings).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch listings: %w", err)
	}

	return listings, total, nil
}

func (s *ListingService) GetListing(id uuid.UUID) (*models.Listing, error) {
	var listing models.Listing
	if err := s.db.Preload("Product").Preload("Retailer").Preload("RetailStore").
		First(&listing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &listing, nil
}

func (s *ListingService) CreateListing(req *CreateListingRequest) (*models.Listing, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	listing := &models.Listing{
		ProductID:     req.ProductID,
		RetailerID:    req.RetailerID,
		RetailStoreID: req.RetailStoreID,
		Price:         *req.Price,
		Quantity:      quantity,
	}

	if err := s.db.Create(listing).Error; err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}

	s.db.Preload("Product").Preload("Retailer").Preload("RetailStore").First(listing, "id = ?", listing.ID)
	return listing, nil
}

// UpdateListing overwrites a listing's fields. A price change additionally
// issues a price alert for the listing's product; alert and update commit in
// one transaction.
func (s *ListingService) UpdateListing(id uuid.UUID, req *UpdateListingRequest) (*models.Listing, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var listing models.Listing

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&listing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}

		if alert := priceChangeAlert(listing.ProductID, listing.Price, *req.Price); alert != nil {
			logrus.WithFields(logrus.Fields{
				"listing_id": id,
				"alert_type": alert.AlertType,
				"old_price":  listing.Price,
				"new_price":  *req.Price,
			}).Info("Issuing price alert")

			if err := tx.Create(alert).Error; err != nil {
				return fmt.Errorf("failed to create alert: %w", err)
			}
		}

		updates := map[string]interface{}{
			"price":           *req.Price,
			"quantity":        *req.Quantity,
			"product_id":      req.ProductID,
			"retailer_id":     req.RetailerID,
			"retail_store_id": req.RetailStoreID,
		}

		if err := tx.Model(&listing).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update listing: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.db.Preload("Product").Preload("Retailer").Preload("RetailStore").First(&listing, "id = ?", id)
	return &listing, nil
}

// ListAllProducts groups every listing by (product, brand) with summed
// quantity and minimum price across all stores and retailers.
func (s *ListingService) ListAllProducts() ([]ProductSummary, error) {
	var summaries []ProductSummary

	err := s.db.Model(&models.Listing{}).
		Select(`listings.product_id AS product_id,
			product_details.name AS name,
			brands.name AS brand,
			SUM(listings.quantity) AS quantity,
			MIN(listings.price) AS price`).
		Joins("JOIN product_details ON product_details.id = listings.product_id").
		Joins("JOIN brands ON brands.id = product_details.brand_id").
		Group("listings.product_id, product_details.name, brands.name").
		Scan(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product summaries: %w", err)
	}

	return summaries, nil
}

// priceChangeAlert builds the alert a price change warrants, or nil when the
// price is unchanged.
func priceChangeAlert(productID uuid.UUID, oldPrice, newPrice float64) *models.Alert {
	if newPrice == oldPrice {
		return nil
	}

	alertType := models.AlertTypePriceDecrease
	direction := "decreased"
	if newPrice > oldPrice {
		alertType = models.AlertTypePriceIncrease
		direction = "increased"
	}

	return &models.Alert{
		ProductID:   productID,
		AlertType:   alertType,
		Description: fmt.Sprintf("Price has been %s from %.2f to %.2f", direction, oldPrice, newPrice),
	}
}
