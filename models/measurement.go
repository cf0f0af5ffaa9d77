package models

import "time"

// Measurement is a point-in-time body snapshot tied to a client. No
// uniqueness is enforced on client_id+date; every submission is a new row.
type Measurement struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ClientID string  `gorm:"size:36;index" json:"client_id" binding:"required"`
	Date     *string `gorm:"size:10" json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`

	WeightKg   *float64 `json:"weight_kg,omitempty" binding:"omitempty,gte=20,lte=400"`
	BodyfatPct *float64 `json:"bodyfat_pct,omitempty" binding:"omitempty,gte=0,lte=100"`
	ChestCm    *float64 `json:"chest_cm,omitempty"`
	WaistCm    *float64 `json:"waist_cm,omitempty"`
	HipsCm     *float64 `json:"hips_cm,omitempty"`
	ThighCm    *float64 `json:"thigh_cm,omitempty"`
	ArmCm      *float64 `json:"arm_cm,omitempty"`
	VO2Max     *float64 `gorm:"column:vo2max" json:"vo2max,omitempty" binding:"omitempty,gte=0"`

	// Estimated 1RM for the key lift plus bodyweight on the same day; the
	// progress endpoint only surfaces rows where both are positive.
	OneRMKg      *float64 `gorm:"column:one_rm_kg" json:"one_rm_kg,omitempty" binding:"omitempty,gte=0"`
	BodyweightKg *float64 `json:"bodyweight_kg,omitempty" binding:"omitempty,gte=0"`
}
