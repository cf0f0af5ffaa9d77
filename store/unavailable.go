package store

import (
	"context"

	"fitcoach-backend/models"
)

// Unavailable is installed when the database cannot be reached at startup.
// Every operation fails with ErrUnavailable so the API serves 503s instead
// of crashing.
type Unavailable struct{}

func (Unavailable) CreateClient(context.Context, *models.Client) error { return ErrUnavailable }
func (Unavailable) ListClients(context.Context) ([]models.Client, error) {
	return nil, ErrUnavailable
}
func (Unavailable) GetClient(context.Context, string) (*models.Client, error) {
	return nil, ErrUnavailable
}
func (Unavailable) CreateMeasurement(context.Context, *models.Measurement) error {
	return ErrUnavailable
}
func (Unavailable) ListMeasurementsByClient(context.Context, string) ([]models.Measurement, error) {
	return nil, ErrUnavailable
}
func (Unavailable) ListProgressMeasurements(context.Context, string) ([]models.Measurement, error) {
	return nil, ErrUnavailable
}
func (Unavailable) CreateSession(context.Context, *models.Session) error { return ErrUnavailable }
func (Unavailable) ListSessionsByClient(context.Context, string) ([]models.Session, error) {
	return nil, ErrUnavailable
}
func (Unavailable) GetSession(context.Context, string) (*models.Session, error) {
	return nil, ErrUnavailable
}
func (Unavailable) MarkSessionAttendance(context.Context, string, string) error {
	return ErrUnavailable
}
func (Unavailable) CreateWorkoutLog(context.Context, *models.WorkoutLog) error {
	return ErrUnavailable
}
func (Unavailable) ListWorkoutLogsByClient(context.Context, string) ([]models.WorkoutLog, error) {
	return nil, ErrUnavailable
}
func (Unavailable) CreateNutritionEntry(context.Context, *models.NutritionEntry) error {
	return ErrUnavailable
}
func (Unavailable) ListNutritionByClient(context.Context, string) ([]models.NutritionEntry, error) {
	return nil, ErrUnavailable
}
func (Unavailable) CreatePayment(context.Context, *models.Payment) error { return ErrUnavailable }
func (Unavailable) ListPaymentsByClient(context.Context, string) ([]models.Payment, error) {
	return nil, ErrUnavailable
}
func (Unavailable) CreateConsentTemplate(context.Context, *models.ConsentTemplate) error {
	return ErrUnavailable
}
func (Unavailable) CreateSignedConsent(context.Context, *models.SignedConsent) error {
	return ErrUnavailable
}
func (Unavailable) Ping(context.Context) error               { return ErrUnavailable }
func (Unavailable) Tables(context.Context) ([]string, error) { return nil, ErrUnavailable }
