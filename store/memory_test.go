package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"fitcoach-backend/models"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func seedClient(t *testing.T, m *Memory, remaining *int) string {
	t.Helper()
	client := models.Client{
		FullName:          "Test Client",
		Email:             "client@example.com",
		SessionsRemaining: remaining,
	}
	require.NoError(t, m.CreateClient(context.Background(), &client))
	return client.ID
}

func seedSession(t *testing.T, m *Memory, clientID, status string) string {
	t.Helper()
	sess := models.Session{
		ClientID:  clientID,
		StartTime: "2026-08-01T09:00:00Z",
		EndTime:   "2026-08-01T10:00:00Z",
		Status:    status,
	}
	require.NoError(t, m.CreateSession(context.Background(), &sess))
	return sess.ID
}

func TestMarkSessionAttendanceCompletedDecrements(t *testing.T) {
	m := NewMemory()
	clientID := seedClient(t, m, intPtr(5))
	sessID := seedSession(t, m, clientID, models.SessionScheduled)

	require.NoError(t, m.MarkSessionAttendance(context.Background(), sessID, models.SessionCompleted))

	client, err := m.GetClient(context.Background(), clientID)
	require.NoError(t, err)
	require.Equal(t, 4, *client.SessionsRemaining)

	sess, err := m.GetSession(context.Background(), sessID)
	require.NoError(t, err)
	require.Equal(t, models.SessionCompleted, sess.Status)
}

func TestMarkSessionAttendanceMissedLeavesCounter(t *testing.T) {
	m := NewMemory()
	clientID := seedClient(t, m, intPtr(5))

	for _, status := range []string{models.SessionMissed, models.SessionCancelled} {
		sessID := seedSession(t, m, clientID, models.SessionScheduled)
		require.NoError(t, m.MarkSessionAttendance(context.Background(), sessID, status))
	}

	client, err := m.GetClient(context.Background(), clientID)
	require.NoError(t, err)
	require.Equal(t, 5, *client.SessionsRemaining)
}

func TestMarkSessionAttendanceRefusesTerminalSession(t *testing.T) {
	m := NewMemory()
	clientID := seedClient(t, m, intPtr(5))
	sessID := seedSession(t, m, clientID, models.SessionScheduled)

	require.NoError(t, m.MarkSessionAttendance(context.Background(), sessID, models.SessionCompleted))

	// Repeating the transition is refused and must not decrement again.
	err := m.MarkSessionAttendance(context.Background(), sessID, models.SessionCompleted)
	require.ErrorIs(t, err, ErrSessionAlreadyFinal)

	client, err := m.GetClient(context.Background(), clientID)
	require.NoError(t, err)
	require.Equal(t, 4, *client.SessionsRemaining)
}

func TestMarkSessionAttendanceClampsAtZero(t *testing.T) {
	m := NewMemory()
	clientID := seedClient(t, m, intPtr(0))
	sessID := seedSession(t, m, clientID, models.SessionScheduled)

	require.NoError(t, m.MarkSessionAttendance(context.Background(), sessID, models.SessionCompleted))

	client, err := m.GetClient(context.Background(), clientID)
	require.NoError(t, err)
	require.Equal(t, 0, *client.SessionsRemaining)
}

func TestMarkSessionAttendanceUnknownSession(t *testing.T) {
	m := NewMemory()
	err := m.MarkSessionAttendance(context.Background(), "no-such-id", models.SessionCompleted)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListProgressMeasurementsFilters(t *testing.T) {
	m := NewMemory()
	clientID := seedClient(t, m, nil)

	records := []models.Measurement{
		{ClientID: clientID, OneRMKg: floatPtr(100), BodyweightKg: floatPtr(80)}, // kept
		{ClientID: clientID, OneRMKg: floatPtr(0), BodyweightKg: floatPtr(80)},   // zero 1RM
		{ClientID: clientID, OneRMKg: floatPtr(100)},                             // missing bodyweight
		{ClientID: clientID, BodyweightKg: floatPtr(80)},                         // missing 1RM
		{ClientID: clientID, OneRMKg: floatPtr(-5), BodyweightKg: floatPtr(80)},  // negative
		{ClientID: "other", OneRMKg: floatPtr(120), BodyweightKg: floatPtr(90)},  // other client
		{ClientID: clientID, OneRMKg: floatPtr(110), BodyweightKg: floatPtr(81)}, // kept
	}
	for i := range records {
		require.NoError(t, m.CreateMeasurement(context.Background(), &records[i]))
	}

	out, err := m.ListProgressMeasurements(context.Background(), clientID)
	require.NoError(t, err)
	require.Len(t, out, 2)
	// Insertion order preserved.
	require.Equal(t, 100.0, *out[0].OneRMKg)
	require.Equal(t, 110.0, *out[1].OneRMKg)
}

func TestListByClientEmptyIsNotAnError(t *testing.T) {
	m := NewMemory()

	sessions, err := m.ListSessionsByClient(context.Background(), "nobody")
	require.NoError(t, err)
	require.Empty(t, sessions)

	measurements, err := m.ListMeasurementsByClient(context.Background(), "nobody")
	require.NoError(t, err)
	require.Empty(t, measurements)

	payments, err := m.ListPaymentsByClient(context.Background(), "nobody")
	require.NoError(t, err)
	require.Empty(t, payments)
}

func TestWithErrorFailsEveryOperation(t *testing.T) {
	m := NewMemory().WithError(ErrUnavailable)

	err := m.CreateClient(context.Background(), &models.Client{FullName: "x", Email: "x@y.z"})
	require.ErrorIs(t, err, ErrUnavailable)

	_, err = m.ListClients(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)

	require.ErrorIs(t, m.Ping(context.Background()), ErrUnavailable)
}
