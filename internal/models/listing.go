// internal/models/listing.go
package models

import (
	"github.com/google/uuid"
)

// Listing is a per-store offer of a catalog item: one row per
// (product, retailer, store) combination with its own price and stock.
// It is exposed over the API as the "products" resource.
type Listing struct {
	BaseModel
	ProductID     uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	RetailerID    uuid.UUID `json:"retailer_id" gorm:"type:uuid;not null;index"`
	RetailStoreID uuid.UUID `json:"retail_store_id" gorm:"type:uuid;not null;index"`
	Price         float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Quantity      int       `json:"quantity" gorm:"not null;default:1"`

	Product     ProductDetail `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Retailer    Retailer      `json:"retailer,omitempty" gorm:"foreignKey:RetailerID"`
	RetailStore RetailStore   `json:"retail_store,omitempty" gorm:"foreignKey:RetailStoreID"`
}

func (Listing) TableName() string {
	return "listings"
}

// InStock reports whether the listing counts toward store availability.
func (l *Listing) InStock() bool {
	return l.Quantity > 0
}
