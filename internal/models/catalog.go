// internal/models/catalog.go
package models

import (
	"github.com/google/uuid"
)

type Brand struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;size:100;not null"`
}

// ProductDetail is a catalog item: what a product is, independent of where it is sold.
type ProductDetail struct {
	BaseModel
	Name        string    `json:"name" gorm:"size:100;not null"`
	BrandID     uuid.UUID `json:"brand_id" gorm:"type:uuid;not null;index"`
	Price       float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Description *string   `json:"description,omitempty" gorm:"size:500"`

	Brand Brand `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
}

type RetailStore struct {
	BaseModel
	Name string `json:"name" gorm:"size:100;not null"`
}

type Retailer struct {
	BaseModel
	Name string `json:"name" gorm:"size:100;not null"`
}
