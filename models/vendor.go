package models

import "time"

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// VendorApplication is a prospective seller's request to open a store. No
// Vendor row exists until an admin approves it.
type VendorApplication struct {
	ID          uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreName   string            `gorm:"not null" json:"store_name"`
	Email       string            `gorm:"index" json:"email"`
	Phone       string            `json:"phone,omitempty"`
	Address     string            `json:"address,omitempty"`
	Description string            `json:"description,omitempty"`
	Status      ApplicationStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	// Nullable: an applicant may apply before registering an account.
	UserID    *string   `gorm:"uniqueIndex" json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Vendor struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string    `gorm:"uniqueIndex;not null" json:"user_id"`
	StoreName   string    `gorm:"not null" json:"store_name"`
	Description string    `json:"description,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	IsApproved  bool      `gorm:"default:false" json:"is_approved"`
	Products    []Product `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
