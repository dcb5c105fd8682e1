// internal/services/listing_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricetrack/pricetrack-backend/internal/models"
)

func TestPriceChangeAlertIncrease(t *testing.T) {
	productID := uuid.New()

	alert := priceChangeAlert(productID, 10.0, 12.5)

	require.NotNil(t, alert)
	assert.Equal(t, productID, alert.ProductID)
	assert.Equal(t, models.AlertTypePriceIncrease, alert.AlertType)
	assert.Equal(t, "Price has been increased from 10.00 to 12.50", alert.Description)
}

func TestPriceChangeAlertDecrease(t *testing.T) {
	productID := uuid.New()

	alert := priceChangeAlert(productID, 12.5, 10.0)

	require.NotNil(t, alert)
	assert.Equal(t, models.AlertTypePriceDecrease, alert.AlertType)
	assert.Equal(t, "Price has been decreased from 12.50 to 10.00", alert.Description)
}

func TestPriceChangeAlertUnchanged(t *testing.T) {
	alert := priceChangeAlert(uuid.New(), 10.0, 10.0)
	assert.Nil(t, alert)
}

func TestCreateListingValidation(t *testing.T) {
	service := NewListingService(nil)

	price := 9.99
	negative := -1.0

	tests := []struct {
		name string
		req  CreateListingRequest
	}{
		{"missing product", CreateListingRequest{RetailerID: uuid.New(), RetailStoreID: uuid.New(), Price: &price}},
		{"missing price", CreateListingRequest{ProductID: uuid.New(), RetailerID: uuid.New(), RetailStoreID: uuid.New()}},
		{"negative price", CreateListingRequest{ProductID: uuid.New(), RetailerID: uuid.New(), RetailStoreID: uuid.New(), Price: &negative}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateListing(&tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateListingValidation(t *testing.T) {
	service := NewListingService(nil)

	price := 9.99

	// Quantity is mandatory on update, unlike create
	req := UpdateListingRequest{
		ProductID:     uuid.New(),
		RetailerID:    uuid.New(),
		RetailStoreID: uuid.New(),
		Price:         &price,
	}

	_, err := service.UpdateListing(uuid.New(), &req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
