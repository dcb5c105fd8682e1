// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// Enums
type PromotionType string

const (
	PromotionTypeFixed      PromotionType = "FIXED"
	PromotionTypePercentage PromotionType = "PERCENTAGE"
)

type PromotionScope string

const (
	PromotionScopeBrand       PromotionScope = "BRAND"
	PromotionScopeProduct     PromotionScope = "PRODUCT"
	PromotionScopeRetailStore PromotionScope = "RETAIL_STORE"
	PromotionScopeRetailer    PromotionScope = "RETAILER"
	PromotionScopeCustom      PromotionScope = "CUSTOM"
)

type AlertType string

const (
	AlertTypePriceIncrease AlertType = "PRICE_INCREASE"
	AlertTypePriceDecrease AlertType = "PRICE_DECREASE"
)
