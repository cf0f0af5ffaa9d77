package services

import (
	"context"
	"errors"

	"fitcoach-backend/models"
	"fitcoach-backend/store"
)

// ErrSessionsExceedTotal rejects a client whose remaining-session counter
// starts above the package total.
var ErrSessionsExceedTotal = errors.New("sessions_remaining cannot exceed sessions_total")

// ClientService wraps client persistence and create-time defaults.
type ClientService struct {
	Store store.Store
}

func NewClientService(s store.Store) *ClientService {
	return &ClientService{Store: s}
}

func (s *ClientService) Create(ctx context.Context, client *models.Client) error {
	if client.IsActive == nil {
		active := true
		client.IsActive = &active
	}
	if client.SessionsTotal != nil && client.SessionsRemaining != nil &&
		*client.SessionsRemaining > *client.SessionsTotal {
		return ErrSessionsExceedTotal
	}
	return s.Store.CreateClient(ctx, client)
}

func (s *ClientService) List(ctx context.Context) ([]models.Client, error) {
	return s.Store.ListClients(ctx)
}
