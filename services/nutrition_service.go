package services

import (
	"context"

	"fitcoach-backend/models"
	"fitcoach-backend/store"
)

// NutritionService wraps nutrition-entry persistence.
type NutritionService struct {
	Store store.Store
}

func NewNutritionService(s store.Store) *NutritionService {
	return &NutritionService{Store: s}
}

func (s *NutritionService) Add(ctx context.Context, n *models.NutritionEntry) error {
	return s.Store.CreateNutritionEntry(ctx, n)
}

func (s *NutritionService) ListByClient(ctx context.Context, clientID string) ([]models.NutritionEntry, error) {
	return s.Store.ListNutritionByClient(ctx, clientID)
}
