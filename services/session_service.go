package services

import (
	"context"
	"errors"

	"fitcoach-backend/models"
	"fitcoach-backend/store"
)

// ErrInvalidAttendanceStatus rejects attendance targets outside the
// completed/missed/cancelled set. "scheduled" is the initial state, not a
// legal target.
var ErrInvalidAttendanceStatus = errors.New("status must be one of completed, missed, cancelled")

// SessionService wraps session booking and the attendance transition.
type SessionService struct {
	Store store.Store
}

func NewSessionService(s store.Store) *SessionService {
	return &SessionService{Store: s}
}

func (s *SessionService) Book(ctx context.Context, sess *models.Session) error {
	if sess.Status == "" {
		sess.Status = models.SessionScheduled
	}
	return s.Store.CreateSession(ctx, sess)
}

func (s *SessionService) ListByClient(ctx context.Context, clientID string) ([]models.Session, error) {
	return s.Store.ListSessionsByClient(ctx, clientID)
}

// MarkAttendance moves a session into a terminal status. Completing a
// session also decrements the owning client's sessions_remaining; both
// writes happen atomically in the store. Sessions already in a terminal
// state are refused, so repeating "completed" never decrements twice.
func (s *SessionService) MarkAttendance(ctx context.Context, sessionID, status string) error {
	switch status {
	case models.SessionCompleted, models.SessionMissed, models.SessionCancelled:
	default:
		return ErrInvalidAttendanceStatus
	}
	return s.Store.MarkSessionAttendance(ctx, sessionID, status)
}
