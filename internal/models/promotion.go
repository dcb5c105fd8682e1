// internal/models/promotion.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Promotion is a time-bounded discount. Each non-nil scope reference narrows
// where it applies; a promotion with no scope references applies everywhere.
type Promotion struct {
	BaseModel
	Name            string         `json:"name" gorm:"size:100;not null"`
	PromotionType   PromotionType  `json:"promotion_type" gorm:"type:varchar(20);not null"`
	PromotionOnType PromotionScope `json:"promotion_on_type" gorm:"type:varchar(20);not null"`
	Value           float64        `json:"value" gorm:"type:decimal(10,2);not null"`
	StartDate       time.Time      `json:"start_date" gorm:"type:date;not null;index"`
	EndDate         time.Time      `json:"end_date" gorm:"type:date;not null;index"`
	BrandID         *uuid.UUID     `json:"brand_id" gorm:"type:uuid;index"`
	ProductID       *uuid.UUID     `json:"product_id" gorm:"type:uuid;index"`
	RetailerID      *uuid.UUID     `json:"retailer_id" gorm:"type:uuid;index"`
	RetailStoreID   *uuid.UUID     `json:"retail_store_id" gorm:"type:uuid;index"`

	Brand       *Brand         `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
	Product     *ProductDetail `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Retailer    *Retailer      `json:"retailer,omitempty" gorm:"foreignKey:RetailerID"`
	RetailStore *RetailStore   `json:"retail_store,omitempty" gorm:"foreignKey:RetailStoreID"`
}

// ActiveAt reports whether the promotion's validity window covers t.
// Start and end are calendar dates, both inclusive.
func (p *Promotion) ActiveAt(t time.Time) bool {
	day := DateOf(t)
	return !day.Before(DateOf(p.StartDate)) && !day.After(DateOf(p.EndDate))
}

// Discount computes the amount taken off a price by this promotion.
// FIXED promotions discount their value as-is; PERCENTAGE promotions
// discount value percent of the given price.
func (p *Promotion) Discount(price float64) float64 {
	if p.PromotionType == PromotionTypePercentage {
		return p.Value * price / 100
	}
	return p.Value
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
