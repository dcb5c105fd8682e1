// internal/models/alert.go
package models

import (
	"github.com/google/uuid"
)

// Alert is an immutable audit record issued when a listing's price changes.
type Alert struct {
	BaseModel
	ProductID   uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	AlertType   AlertType `json:"alert_type" gorm:"type:varchar(50);not null"`
	Description string    `json:"desc" gorm:"size:255"`

	Product ProductDetail `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
