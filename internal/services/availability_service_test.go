// internal/services/availability_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricetrack/pricetrack-backend/internal/models"
	"github.com/pricetrack/pricetrack-backend/internal/repository"
)

type fakeAvailabilityRepo struct {
	listings   []repository.ListingRow
	promotions []models.Promotion
	storeIDs   []uuid.UUID
}

func (f *fakeAvailabilityRepo) ListProductListings(productID uuid.UUID) ([]repository.ListingRow, error) {
	var rows []repository.ListingRow
	for _, l := range f.listings {
		if l.ProductID == productID && l.Quantity > 0 {
			rows = append(rows, l)
		}
	}
	return rows, nil
}

func (f *fakeAvailabilityRepo) ListActivePromotions(now time.Time) ([]models.Promotion, error) {
	var active []models.Promotion
	for _, p := range f.promotions {
		if p.ActiveAt(now) {
			active = append(active, p)
		}
	}
	return active, nil
}

func (f *fakeAvailabilityRepo) ListAllStoreIDs() ([]uuid.UUID, error) {
	return f.storeIDs, nil
}

func promotionWindow(start, end string) (time.Time, time.Time) {
	s, _ := time.ParseInLocation(time.DateOnly, start, time.UTC)
	e, _ := time.ParseInLocation(time.DateOnly, end, time.UTC)
	return s, e
}

func TestResolveRejectsNilProductID(t *testing.T) {
	service := NewAvailabilityService(&fakeAvailabilityRepo{})

	_, err := service.Resolve(uuid.Nil, time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingParameter)
}

func TestResolveExcludesZeroQuantityListings(t *testing.T) {
	productID := uuid.New()
	storeA := uuid.New()
	storeB := uuid.New()
	retailer := uuid.New()

	repo := &fakeAvailabilityRepo{
		listings: []repository.ListingRow{
			{ProductID: productID, StoreID: storeA, StoreName: "A", RetailerID: retailer, Price: 10.0, Quantity: 5},
			{ProductID: productID, StoreID: storeB, StoreName: "B", RetailerID: retailer, Price: 8.0, Quantity: 0},
		},
		storeIDs: []uuid.UUID{storeA, storeB},
	}
	service := NewAvailabilityService(repo)

	view, err := service.Resolve(productID, time.Now())
	require.NoError(t, err)

	require.Len(t, view.Rows, 1)
	assert.Equal(t, storeA, view.Rows[0].StoreID)
	assert.Equal(t, []uuid.UUID{storeA}, view.Availability.AvailableStores)
	assert.Equal(t, []uuid.UUID{storeB}, view.Availability.NotAvailable)
}

func TestResolveGroupsByStoreAndRetailer(t *testing.T) {
	productID := uuid.New()
	store := uuid.New()
	retailerA := uuid.New()
	retailerB := uuid.New()

	repo := &fakeAvailabilityRepo{
		listings: []repository.ListingRow{
			{ProductID: productID, StoreID: store, RetailerID: retailerA, Price: 12.0, Quantity: 2},
			{ProductID: productID, StoreID: store, RetailerID: retailerA, Price: 9.5, Quantity: 3},
			{ProductID: productID, StoreID: store, RetailerID: retailerB, Price: 11.0, Quantity: 1},
		},
		storeIDs: []uuid.UUID{store},
	}
	service := NewAvailabilityService(repo)

	view, err := service.Resolve(productID, time.Now())
	require.NoError(t, err)

	require.Len(t, view.Rows, 2)

	merged := view.Rows[0]
	assert.Equal(t, retailerA, merged.RetailerID)
	assert.Equal(t, 5, merged.Quantity)
	assert.Equal(t, 9.5, merged.MinPrice)

	solo := view.Rows[1]
	assert.Equal(t, retailerB, solo.RetailerID)
	assert.Equal(t, 1, solo.Quantity)
	assert.Equal(t, 11.0, solo.MinPrice)

	// Same store appears once in the availability header
	assert.Equal(t, []uuid.UUID{store}, view.Availability.AvailableStores)
	assert.Empty(t, view.Availability.NotAvailable)
}

func TestResolveAppliesGlobalPromotion(t *testing.T) {
	productID := uuid.New()
	store := uuid.New()
	retailer := uuid.New()
	now := time.Date(2026, 8, 15, 13, 30, 0, 0, time.UTC)
	start, end := promotionWindow("2026-08-01", "2026-08-31")

	repo := &fakeAvailabilityRepo{
		listings: []repository.ListingRow{
			{ProductID: productID, StoreID: store, RetailerID: retailer, Price: 10.0, Quantity: 5},
		},
		promotions: []models.Promotion{
			{
				BaseModel:       models.BaseModel{ID: uuid.New()},
				Name:            "Summer Sale",
				PromotionType:   models.PromotionTypePercentage,
				PromotionOnType: models.PromotionScopeCustom,
				Value:           10,
				StartDate:       start,
				EndDate:         end,
			},
		},
		storeIDs: []uuid.UUID{store},
	}
	service := NewAvailabilityService(repo)

	view, err := service.Resolve(productID, now)
	require.NoError(t, err)

	require.Len(t, view.Rows, 1)
	require.Len(t, view.Rows[0].Promotions, 1)

	applied := view.Rows[0].Promotions[0]
	assert.Equal(t, "Summer Sale", applied.Name)
	assert.InDelta(t, 1.0, applied.Discount, 1e-9)
	assert.InDelta(t, 9.0, applied.DiscountedPrice, 1e-9)
}

func TestResolveMatchesPromotionScopes(t *testing.T) {
	productID := uuid.New()
	otherProduct := uuid.New()
	brand := uuid.New()
	otherBrand := uuid.New()
	store := uuid.New()
	otherStore := uuid.New()
	retailer := uuid.New()
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	start, end := promotionWindow("2026-08-01", "2026-08-31")

	value := func(name string, v float64, scope func(p *models.Promotion)) models.Promotion {
		p := models.Promotion{
			BaseModel:     models.BaseModel{ID: uuid.New()},
			Name:          name,
			PromotionType: models.PromotionTypeFixed,
			Value:         v,
			StartDate:     start,
			EndDate:       end,
		}
		scope(&p)
		return p
	}

	repo := &fakeAvailabilityRepo{
		listings: []repository.ListingRow{
			{ProductID: productID, StoreID: store, BrandID: brand, RetailerID: retailer, Price: 100.0, Quantity: 1},
		},
		promotions: []models.Promotion{
			value("brand match", 1, func(p *models.Promotion) { p.BrandID = &brand }),
			value("brand miss", 2, func(p *models.Promotion) { p.BrandID = &otherBrand }),
			value("product match", 3, func(p *models.Promotion) { p.ProductID = &productID }),
			value("product miss", 4, func(p *models.Promotion) { p.ProductID = &otherProduct }),
			value("store match", 5, func(p *models.Promotion) { p.RetailStoreID = &store }),
			value("store miss", 6, func(p *models.Promotion) { p.RetailStoreID = &otherStore }),
			value("combined miss", 7, func(p *models.Promotion) {
				p.BrandID = &brand
				p.RetailStoreID = &otherStore
			}),
		},
		storeIDs: []uuid.UUID{store},
	}
	service := NewAvailabilityService(repo)

	view, err := service.Resolve(productID, now)
	require.NoError(t, err)
	require.Len(t, view.Rows, 1)

	var names []string
	for _, p := range view.Rows[0].Promotions {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"brand match", "product match", "store match"}, names)
}

func TestResolveSkipsInactivePromotions(t *testing.T) {
	productID := uuid.New()
	store := uuid.New()
	retailer := uuid.New()
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	expiredStart, expiredEnd := promotionWindow("2026-07-01", "2026-07-31")
	futureStart, futureEnd := promotionWindow("2026-09-01", "2026-09-30")
	activeStart, activeEnd := promotionWindow("2026-08-15", "2026-08-15")

	repo := &fakeAvailabilityRepo{
		listings: []repository.ListingRow{
			{ProductID: productID, StoreID: store, RetailerID: retailer, Price: 20.0, Quantity: 2},
		},
		promotions: []models.Promotion{
			{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "expired", PromotionType: models.PromotionTypeFixed, Value: 1, StartDate: expiredStart, EndDate: expiredEnd},
			{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "future", PromotionType: models.PromotionTypeFixed, Value: 1, StartDate: futureStart, EndDate: futureEnd},
			{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "single day", PromotionType: models.PromotionTypeFixed, Value: 1, StartDate: activeStart, EndDate: activeEnd},
		},
		storeIDs: []uuid.UUID{store},
	}
	service := NewAvailabilityService(repo)

	view, err := service.Resolve(productID, now)
	require.NoError(t, err)
	require.Len(t, view.Rows, 1)
	require.Len(t, view.Rows[0].Promotions, 1)
	assert.Equal(t, "single day", view.Rows[0].Promotions[0].Name)
}

func TestResolveFixedDiscountCanUndercutPrice(t *testing.T) {
	productID := uuid.New()
	store := uuid.New()
	retailer := uuid.New()
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	start, end := promotionWindow("2026-08-01", "2026-08-31")

	repo := &fakeAvailabilityRepo{
		listings: []repository.ListingRow{
			{ProductID: productID, StoreID: store, RetailerID: retailer, Price: 3.0, Quantity: 1},
		},
		promotions: []models.Promotion{
			{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "deep cut", PromotionType: models.PromotionTypeFixed, Value: 5, StartDate: start, EndDate: end},
		},
		storeIDs: []uuid.UUID{store},
	}
	service := NewAvailabilityService(repo)

	view, err := service.Resolve(productID, now)
	require.NoError(t, err)
	require.Len(t, view.Rows, 1)
	require.Len(t, view.Rows[0].Promotions, 1)

	applied := view.Rows[0].Promotions[0]
	assert.InDelta(t, 5.0, applied.Discount, 1e-9)
	assert.InDelta(t, -2.0, applied.DiscountedPrice, 1e-9)
}

func TestResolveNoListings(t *testing.T) {
	productID := uuid.New()
	storeA := uuid.New()
	storeB := uuid.New()

	repo := &fakeAvailabilityRepo{
		storeIDs: []uuid.UUID{storeA, storeB},
	}
	service := NewAvailabilityService(repo)

	view, err := service.Resolve(productID, time.Now())
	require.NoError(t, err)

	assert.Empty(t, view.Rows)
	assert.Empty(t, view.Availability.AvailableStores)
	assert.Equal(t, []uuid.UUID{storeA, storeB}, view.Availability.NotAvailable)
}

func TestResolvePromotionsInitializedEmpty(t *testing.T) {
	productID := uuid.New()
	store := uuid.New()
	retailer := uuid.New()

	repo := &fakeAvailabilityRepo{
		listings: []repository.ListingRow{
			{ProductID: productID, StoreID: store, RetailerID: retailer, Price: 10.0, Quantity: 1},
		},
		storeIDs: []uuid.UUID{store},
	}
	service := NewAvailabilityService(repo)

	view, err := service.Resolve(productID, time.Now())
	require.NoError(t, err)
	require.Len(t, view.Rows, 1)

	// Empty slice, not nil: serializes as [] on the wire
	assert.NotNil(t, view.Rows[0].Promotions)
	assert.Empty(t, view.Rows[0].Promotions)
}

func TestResolveIsIdempotent(t *testing.T) {
	productID := uuid.New()
	store := uuid.New()
	retailer := uuid.New()
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	start, end := promotionWindow("2026-08-01", "2026-08-31")

	repo := &fakeAvailabilityRepo{
		listings: []repository.ListingRow{
			{ProductID: productID, StoreID: store, RetailerID: retailer, Price: 10.0, Quantity: 5},
		},
		promotions: []models.Promotion{
			{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "steady", PromotionType: models.PromotionTypePercentage, Value: 10, StartDate: start, EndDate: end},
		},
		storeIDs: []uuid.UUID{store},
	}
	service := NewAvailabilityService(repo)

	first, err := service.Resolve(productID, now)
	require.NoError(t, err)
	second, err := service.Resolve(productID, now)
	require.NoError(t, err)

	assert.Equal(t, first.Availability, second.Availability)
	require.Len(t, second.Rows, len(first.Rows))
	for i := range first.Rows {
		assert.Equal(t, *first.Rows[i], *second.Rows[i])
	}
}
