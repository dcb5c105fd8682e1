// internal/handlers/product_detail_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricetrack/pricetrack-backend/internal/models"
	"github.com/pricetrack/pricetrack-backend/internal/repository"
	"github.com/pricetrack/pricetrack-backend/internal/services"
)

type stubAvailabilityRepo struct {
	listings   []repository.ListingRow
	promotions []models.Promotion
	storeIDs   []uuid.UUID
}

func (s *stubAvailabilityRepo) ListProductListings(productID uuid.UUID) ([]repository.ListingRow, error) {
	var rows []repository.ListingRow
	for _, l := range s.listings {
		if l.ProductID == productID {
			rows = append(rows, l)
		}
	}
	return rows, nil
}

func (s *stubAvailabilityRepo) ListActivePromotions(now time.Time) ([]models.Promotion, error) {
	return s.promotions, nil
}

func (s *stubAvailabilityRepo) ListAllStoreIDs() ([]uuid.UUID, error) {
	return s.storeIDs, nil
}

func availabilityTestRouter(repo repository.AvailabilityRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewProductDetailHandler(nil, services.NewAvailabilityService(repo))

	r := gin.New()
	r.GET("/product-details/product/:id", handler.GetProductAvailability)
	return r
}

func TestGetProductAvailabilityInvalidID(t *testing.T) {
	r := availabilityTestRouter(&stubAvailabilityRepo{})

	req := httptest.NewRequest(http.MethodGet, "/product-details/product/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid product id", body["detail"])
}

func TestGetProductAvailabilityPayloadShape(t *testing.T) {
	productID := uuid.New()
	storeA := uuid.New()
	storeB := uuid.New()
	retailer := uuid.New()

	repo := &stubAvailabilityRepo{
		listings: []repository.ListingRow{
			{ProductID: productID, StoreID: storeA, StoreName: "Downtown", RetailerID: retailer, Price: 19.99, Quantity: 3},
		},
		storeIDs: []uuid.UUID{storeA, storeB},
	}
	r := availabilityTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/product-details/product/"+productID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var payload []json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.Len(t, payload, 2)

	var header struct {
		AvailableStores []uuid.UUID `json:"available_stores"`
		NotAvailable    []uuid.UUID `json:"not_available"`
	}
	require.NoError(t, json.Unmarshal(payload[0], &header))
	assert.Equal(t, []uuid.UUID{storeA}, header.AvailableStores)
	assert.Equal(t, []uuid.UUID{storeB}, header.NotAvailable)

	var row struct {
		ProductID  uuid.UUID         `json:"_id"`
		StoreID    uuid.UUID         `json:"store_id"`
		StoreName  string            `json:"store_name"`
		RetailerID uuid.UUID         `json:"seller_id"`
		Quantity   int               `json:"quant"`
		MinPrice   float64           `json:"min_price"`
		Promotions []json.RawMessage `json:"promotions"`
	}
	require.NoError(t, json.Unmarshal(payload[1], &row))
	assert.Equal(t, productID, row.ProductID)
	assert.Equal(t, storeA, row.StoreID)
	assert.Equal(t, "Downtown", row.StoreName)
	assert.Equal(t, retailer, row.RetailerID)
	assert.Equal(t, 3, row.Quantity)
	assert.InDelta(t, 19.99, row.MinPrice, 1e-9)
	assert.NotNil(t, row.Promotions)
	assert.Empty(t, row.Promotions)
}
