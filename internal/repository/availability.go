// internal/repository/availability.go
package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pricetrack/pricetrack-backend/internal/models"
)

// ListingRow is one listing joined with the dimensions promotion matching needs.
type ListingRow struct {
	ProductID  uuid.UUID `json:"product_id"`
	StoreID    uuid.UUID `json:"store_id"`
	StoreName  string    `json:"store_name"`
	BrandID    uuid.UUID `json:"brand_id"`
	BrandName  string    `json:"brand_name"`
	RetailerID uuid.UUID `json:"retailer_id"`
	Price      float64   `json:"price"`
	Quantity   int       `json:"quantity"`
}

// AvailabilityRepository provides the eagerly-materialized queries the
// availability resolver runs. Each method issues one query; callers get plain
// slices so the aggregation logic stays deterministic and testable.
type AvailabilityRepository interface {
	// ListProductListings returns the in-stock listings for a product, each
	// joined with its store and brand dimensions, in stable fetch order.
	ListProductListings(productID uuid.UUID) ([]ListingRow, error)

	// ListActivePromotions returns promotions whose validity window covers
	// now's calendar date, in fetch order.
	ListActivePromotions(now time.Time) ([]models.Promotion, error)

	// ListAllStoreIDs returns the ids of every retail store.
	ListAllStoreIDs() ([]uuid.UUID, error)
}

type availabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) AvailabilityRepository {
	return &availabilityRepository{db: db}
}

func (r *availabilityRepository) ListProductListings(productID uuid.UUID) ([]ListingRow, error) {
	var rows []ListingRow

	err := r.db.Model(&models.Listing{}).
		Select(`listings.product_id AS product_id,
			listings.retail_store_id AS store_id,
			retail_stores.name AS store_name,
			product_details.brand_id AS brand_id,
			brands.name AS brand_name,
			listings.retailer_id AS retailer_id,
			listings.price AS price,
			listings.quantity AS quantity`).
		Joins("JOIN product_details ON product_details.id = listings.product_id").
		Joins("JOIN brands ON brands.id = product_details.brand_id").
		Joins("JOIN retail_stores ON retail_stores.id = listings.retail_store_id").
		Where("listings.product_id = ? AND listings.quantity > 0", productID).
		Order("listings.created_at").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}

	return rows, nil
}

func (r *availabilityRepository) ListActivePromotions(now time.Time) ([]models.Promotion, error) {
	var promotions []models.Promotion

	day := models.DateOf(now)
	if err := r.db.
		Where("start_date <= ? AND end_date >= ?", day, day).
		Order("created_at").
		Find(&promotions).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch promotions: %w", err)
	}

	return promotions, nil
}

func (r *availabilityRepository) ListAllStoreIDs() ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := r.db.Model(&models.RetailStore{}).
		Order("created_at").
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch store ids: %w", err)
	}

	return ids, nil
}
