package models

import "time"

// Session statuses. Scheduled is the initial state; the other three are
// terminal — the attendance endpoint refuses to move a session out of them.
const (
	SessionScheduled = "scheduled"
	SessionCompleted = "completed"
	SessionMissed    = "missed"
	SessionCancelled = "cancelled"
)

// Session is a scheduled training slot for a client.
type Session struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ClientID  string  `gorm:"size:36;index" json:"client_id" binding:"required"`
	StartTime string  `gorm:"size:64" json:"start_time" binding:"required"`
	EndTime   string  `gorm:"size:64" json:"end_time" binding:"required"`
	Status    string  `gorm:"size:16" json:"status" binding:"omitempty,oneof=scheduled completed missed cancelled"`
	Location  *string `gorm:"size:255" json:"location,omitempty"`
	Notes     *string `gorm:"type:text" json:"notes,omitempty"`

	RescheduleCount int  `gorm:"default:0" json:"reschedule_count"`
	IsFrozen        bool `gorm:"default:false" json:"is_frozen"`
}

// Terminal reports whether the session status admits no further transition.
func (s *Session) Terminal() bool {
	switch s.Status {
	case SessionCompleted, SessionMissed, SessionCancelled:
		return true
	}
	return false
}
