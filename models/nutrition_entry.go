package models

import "time"

// NutritionEntry is one logged meal item for a client.
type NutritionEntry struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ClientID string `gorm:"size:36;index" json:"client_id" binding:"required"`
	Date     string `gorm:"size:10" json:"date" binding:"required,datetime=2006-01-02"`
	Meal     string `gorm:"size:16" json:"meal" binding:"required,oneof=breakfast lunch dinner snack"`
	Item     string `gorm:"size:255" json:"item" binding:"required"`

	Calories *int     `json:"calories,omitempty" binding:"omitempty,gte=0"`
	ProteinG *float64 `json:"protein_g,omitempty" binding:"omitempty,gte=0"`
	CarbsG   *float64 `json:"carbs_g,omitempty" binding:"omitempty,gte=0"`
	FatsG    *float64 `json:"fats_g,omitempty" binding:"omitempty,gte=0"`
}
