package services

import (
	"context"

	"fitcoach-backend/models"
	"fitcoach-backend/store"
)

// MeasurementService wraps measurement persistence and the progress query.
type MeasurementService struct {
	Store store.Store
}

func NewMeasurementService(s store.Store) *MeasurementService {
	return &MeasurementService{Store: s}
}

func (s *MeasurementService) Add(ctx context.Context, m *models.Measurement) error {
	return s.Store.CreateMeasurement(ctx, m)
}

func (s *MeasurementService) ListByClient(ctx context.Context, clientID string) ([]models.Measurement, error) {
	return s.Store.ListMeasurementsByClient(ctx, clientID)
}

// Progress returns the measurements usable for relative-strength tracking:
// those with both one_rm_kg and bodyweight_kg present and positive.
func (s *MeasurementService) Progress(ctx context.Context, clientID string) ([]models.Measurement, error) {
	return s.Store.ListProgressMeasurements(ctx, clientID)
}
