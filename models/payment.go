package models

import "time"

// Payment records a package purchase. Currency defaults to INR and status
// to paid in the service layer.
type Payment struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ClientID    string   `gorm:"size:36;index" json:"client_id" binding:"required"`
	PackageName string   `gorm:"size:255" json:"package_name" binding:"required"`
	Amount      *float64 `json:"amount" binding:"required,gte=0"`
	Currency    string   `gorm:"size:8" json:"currency"`
	StartDate   string   `gorm:"size:10" json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string   `gorm:"size:10" json:"end_date" binding:"required,datetime=2006-01-02"`
	Status      string   `gorm:"size:16" json:"status" binding:"omitempty,oneof=paid pending failed"`

	SessionsIncluded *int `json:"sessions_included,omitempty"`
}
