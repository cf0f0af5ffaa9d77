package services

import (
	"context"

	"fitcoach-backend/models"
	"fitcoach-backend/store"
)

// WorkoutService wraps workout-log persistence.
type WorkoutService struct {
	Store store.Store
}

func NewWorkoutService(s store.Store) *WorkoutService {
	return &WorkoutService{Store: s}
}

func (s *WorkoutService) Log(ctx context.Context, w *models.WorkoutLog) error {
	if w.Source == "" {
		w.Source = "session"
	}
	return s.Store.CreateWorkoutLog(ctx, w)
}

func (s *WorkoutService) ListByClient(ctx context.Context, clientID string) ([]models.WorkoutLog, error) {
	return s.Store.ListWorkoutLogsByClient(ctx, clientID)
}
