package models

import "time"

// WorkoutLog records one exercise entry for a client, either from a coached
// session or a home workout. Source defaults to "session".
type WorkoutLog struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ClientID string `gorm:"size:36;index" json:"client_id" binding:"required"`
	Date     string `gorm:"size:10" json:"date" binding:"required,datetime=2006-01-02"`
	Exercise string `gorm:"size:255" json:"exercise" binding:"required"`

	Sets     *int     `json:"sets" binding:"required,gte=0"`
	Reps     *int     `json:"reps" binding:"required,gte=0"`
	WeightKg *float64 `json:"weight_kg,omitempty"`
	Notes    *string  `gorm:"type:text" json:"notes,omitempty"`
	Source   string   `gorm:"size:16" json:"source" binding:"omitempty,oneof=session home"`
}
