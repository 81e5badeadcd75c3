package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	VendorID    uint   `gorm:"index;not null" json:"vendor_id"`
	CategoryID  uint   `gorm:"index;not null" json:"category_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	// Price is in NLe, the base currency. USD is a display-only conversion.
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Stock     int             `gorm:"default:0" json:"stock"`
	ImageURL  string          `json:"image_url"`
	IsActive  bool            `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
