// internal/services/availability_service.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pricetrack/pricetrack-backend/internal/models"
	"github.com/pricetrack/pricetrack-backend/internal/repository"
)

// AvailabilityService answers the central query of the system: for one catalog
// product, where is it in stock, at what minimum price per store, and which
// active promotions apply there.
type AvailabilityService struct {
	repo repository.AvailabilityRepository
}

// AppliedPromotion is one promotion overlaid on an aggregate row.
type AppliedPromotion struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Discount        float64   `json:"discount"`
	DiscountedPrice float64   `json:"discounted_price"`
}

// ListingAggregate is one (store, retailer) group: total stock, the cheapest
// listed price, and the promotions that apply to it.
type ListingAggregate struct {
	ProductID  uuid.UUID          `json:"_id"`
	StoreID    uuid.UUID          `json:"store_id"`
	StoreName  string             `json:"store_name"`
	BrandID    uuid.UUID          `json:"brand_id"`
	BrandName  string             `json:"brand_name"`
	RetailerID uuid.UUID          `json:"seller_id"`
	Quantity   int                `json:"quant"`
	MinPrice   float64            `json:"min_price"`
	Promotions []AppliedPromotion `json:"promotions"`
}

// StoreAvailability partitions all store ids into those with stock for the
// product and those without.
type StoreAvailability struct {
	AvailableStores []uuid.UUID `json:"available_stores"`
	NotAvailable    []uuid.UUID `json:"not_available"`
}

// AggregatedView is the resolver output: the availability header plus one row
// per (store, retailer) group.
type AggregatedView struct {
	Availability StoreAvailability
	Rows         []*ListingAggregate
}

func NewAvailabilityService(repo repository.AvailabilityRepository) *AvailabilityService {
	return &AvailabilityService{repo: repo}
}

// Resolve aggregates the in-stock listings of productID and overlays the
// promotions active at now. Read-only.
func (s *AvailabilityService) Resolve(productID uuid.UUID, now time.Time) (*AggregatedView, error) {
	if productID == uuid.Nil {
		return nil, fmt.Errorf("%w: product id", ErrMissingParameter)
	}

	listings, err := s.repo.ListProductListings(productID)
	if err != nil {
		return nil, err
	}

	rows := groupListings(listings)

	promotions, err := s.repo.ListActivePromotions(now)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		for i := range promotions {
			promotion := &promotions[i]
			if !promotion.ActiveAt(now) {
				continue
			}
			if !promotionApplies(promotion, row) {
				continue
			}

			discount := promotion.Discount(row.MinPrice)
			row.Promotions = append(row.Promotions, AppliedPromotion{
				ID:              promotion.ID,
				Name:            promotion.Name,
				Discount:        discount,
				DiscountedPrice: row.MinPrice - discount,
			})
		}
	}

	storeIDs, err := s.repo.ListAllStoreIDs()
	if err != nil {
		return nil, err
	}

	view := &AggregatedView{
		Availability: partitionStores(rows, storeIDs),
		Rows:         rows,
	}

	logrus.WithFields(logrus.Fields{
		"product_id":       productID,
		"rows":             len(rows),
		"promotions":       len(promotions),
		"available_stores": len(view.Availability.AvailableStores),
	}).Debug("Resolved product availability")

	return view, nil
}

// groupListings folds listings into one aggregate per (store, retailer) pair,
// summing quantity and keeping the minimum price. First-seen order is kept.
func groupListings(listings []repository.ListingRow) []*ListingAggregate {
	type groupKey struct {
		storeID    uuid.UUID
		retailerID uuid.UUID
	}

	rows := make([]*ListingAggregate, 0, len(listings))
	groups := make(map[groupKey]*ListingAggregate)

	for _, listing := range listings {
		if listing.Quantity <= 0 {
			continue
		}

		key := groupKey{storeID: listing.StoreID, retailerID: listing.RetailerID}
		if row, ok := groups[key]; ok {
			row.Quantity += listing.Quantity
			if listing.Price < row.MinPrice {
				row.MinPrice = listing.Price
			}
			continue
		}

		row := &ListingAggregate{
			ProductID:  listing.ProductID,
			StoreID:    listing.StoreID,
			StoreName:  listing.StoreName,
			BrandID:    listing.BrandID,
			BrandName:  listing.BrandName,
			RetailerID: listing.RetailerID,
			Quantity:   listing.Quantity,
			MinPrice:   listing.Price,
			Promotions: []AppliedPromotion{},
		}
		groups[key] = row
		rows = append(rows, row)
	}

	return rows
}

// promotionApplies checks every scope reference the promotion sets against the
// row's corresponding dimension. Unset references are wildcards.
func promotionApplies(p *models.Promotion, row *ListingAggregate) bool {
	if p.BrandID != nil && *p.BrandID != row.BrandID {
		return false
	}
	if p.ProductID != nil && *p.ProductID != row.ProductID {
		return false
	}
	if p.RetailStoreID != nil && *p.RetailStoreID != row.StoreID {
		return false
	}
	if p.RetailerID != nil && *p.RetailerID != row.RetailerID {
		return false
	}
	return true
}

func partitionStores(rows []*ListingAggregate, storeIDs []uuid.UUID) StoreAvailability {
	available := make(map[uuid.UUID]bool, len(rows))
	availability := StoreAvailability{
		AvailableStores: []uuid.UUID{},
		NotAvailable:    []uuid.UUID{},
	}

	for _, row := range rows {
		if !available[row.StoreID] {
			available[row.StoreID] = true
			availability.AvailableStores = append(availability.AvailableStores, row.StoreID)
		}
	}

	for _, id := range storeIDs {
		if !available[id] {
			availability.NotAvailable = append(availability.NotAvailable, id)
		}
	}

	return availability
}
