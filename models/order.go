package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting payment
	OrderStatusPaid      OrderStatus = "paid"      // payment confirmed
	OrderStatusDelivered OrderStatus = "delivered" // customer received the items
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled before delivery
)

// ShippingAddress is stored as a JSON column on the order.
type ShippingAddress struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	Region  string `json:"region,omitempty"`
	Country string `json:"country"`
}

type Order struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderRef string `gorm:"uniqueIndex;not null" json:"order_ref"`
	VendorID uint   `gorm:"index;not null" json:"vendor_id"`
	// Nullable: guest checkout is allowed.
	CustomerID    *string         `gorm:"index" json:"customer_id,omitempty"`
	CustomerName  string          `gorm:"not null" json:"customer_name"`
	CustomerEmail string          `gorm:"not null" json:"customer_email"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	Currency      string          `gorm:"type:VARCHAR(3);not null" json:"currency"`
	Rate          decimal.Decimal `gorm:"type:decimal(12,4)" json:"rate"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	ShippingFee   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"shipping_fee"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	PaymentMethod string          `gorm:"not null" json:"payment_method"`
	Notes         string          `json:"notes,omitempty"`
	ShippingAddr  ShippingAddress `gorm:"serializer:json" json:"shipping_address"`
	Status        OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
}

// OrderItem is a write-once snapshot of the product at purchase time. Later
// edits to the product never change these rows.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint            `gorm:"index" json:"order_id"`
	ProductID uint            `json:"product_id"`
	VendorID  uint            `gorm:"index" json:"vendor_id"`
	Name      string          `gorm:"not null" json:"name"`
	ImageURL  string          `json:"image_url,omitempty"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Quantity  int             `gorm:"not null" json:"quantity"`
}
