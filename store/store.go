package store

import (
	"context"
	"errors"

	"fitcoach-backend/models"
)

// Sentinel errors surfaced to controllers. Anything else coming out of a
// Store is an unexpected persistence failure.
var (
	// ErrNotFound indicates the referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUnavailable indicates the database cannot be reached.
	ErrUnavailable = errors.New("store unavailable")

	// ErrSessionAlreadyFinal indicates an attendance update targeted a
	// session that is already completed, missed, or cancelled.
	ErrSessionAlreadyFinal = errors.New("session already in a terminal state")
)

// Store is the typed persistence contract the services are written against.
// The production implementation is backed by MySQL through GORM; tests use
// the in-memory implementation. List methods return records in insertion
// order and yield a non-nil empty slice when nothing matches.
type Store interface {
	CreateClient(ctx context.Context, client *models.Client) error
	ListClients(ctx context.Context) ([]models.Client, error)
	GetClient(ctx context.Context, id string) (*models.Client, error)

	CreateMeasurement(ctx context.Context, m *models.Measurement) error
	ListMeasurementsByClient(ctx context.Context, clientID string) ([]models.Measurement, error)
	// ListProgressMeasurements returns a client's measurements where both
	// one_rm_kg and bodyweight_kg are present and strictly positive.
	ListProgressMeasurements(ctx context.Context, clientID string) ([]models.Measurement, error)

	CreateSession(ctx context.Context, s *models.Session) error
	ListSessionsByClient(ctx context.Context, clientID string) ([]models.Session, error)
	GetSession(ctx context.Context, id string) (*models.Session, error)
	// MarkSessionAttendance sets the session status and, when the new status
	// is completed, decrements the owning client's sessions_remaining
	// (never below zero). Both writes happen atomically. Sessions already in
	// a terminal state are refused with ErrSessionAlreadyFinal.
	MarkSessionAttendance(ctx context.Context, sessionID, status string) error

	CreateWorkoutLog(ctx context.Context, w *models.WorkoutLog) error
	ListWorkoutLogsByClient(ctx context.Context, clientID string) ([]models.WorkoutLog, error)

	CreateNutritionEntry(ctx context.Context, n *models.NutritionEntry) error
	ListNutritionByClient(ctx context.Context, clientID string) ([]models.NutritionEntry, error)

	CreatePayment(ctx context.Context, p *models.Payment) error
	ListPaymentsByClient(ctx context.Context, clientID string) ([]models.Payment, error)

	CreateConsentTemplate(ctx context.Context, t *models.ConsentTemplate) error
	CreateSignedConsent(ctx context.Context, s *models.SignedConsent) error

	// Ping verifies connectivity; Tables lists backing table names for the
	// diagnostic endpoint.
	Ping(ctx context.Context) error
	Tables(ctx context.Context) ([]string, error)
}
