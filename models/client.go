package models

import "time"

// Client is a coaching client profile. Optional fields stay NULL when the
// caller omits them; is_active defaults to true in the service layer.
type Client struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FullName    string   `gorm:"size:255" json:"full_name" binding:"required"`
	Email       string   `gorm:"size:255" json:"email" binding:"required"`
	Phone       *string  `gorm:"size:64" json:"phone,omitempty"`
	Gender      *string  `gorm:"size:16" json:"gender,omitempty" binding:"omitempty,oneof=male female other"`
	DateOfBirth *string  `gorm:"size:10" json:"date_of_birth,omitempty" binding:"omitempty,datetime=2006-01-02"`
	HeightCm    *float64 `json:"height_cm,omitempty" binding:"omitempty,gte=50,lte=250"`
	WeightKg    *float64 `json:"weight_kg,omitempty" binding:"omitempty,gte=20,lte=400"`
	Goal        *string  `gorm:"size:255" json:"goal,omitempty"`
	Notes       *string  `gorm:"type:text" json:"notes,omitempty"`

	PackageType       *string `gorm:"size:128" json:"package_type,omitempty"`
	SessionsTotal     *int    `json:"sessions_total,omitempty" binding:"omitempty,gte=0"`
	SessionsRemaining *int    `json:"sessions_remaining,omitempty" binding:"omitempty,gte=0"`
	IsActive          *bool   `json:"is_active,omitempty"`
}
