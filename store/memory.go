package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"fitcoach-backend/models"
)

// Memory is an in-memory Store used by unit tests. Slices preserve
// insertion order, matching the created_at ordering of the GORM store, and
// the attendance transition applies the same guarded semantics under a
// single lock.
type Memory struct {
	mu sync.Mutex

	clients      []models.Client
	measurements []models.Measurement
	sessions     []models.Session
	workouts     []models.WorkoutLog
	nutrition    []models.NutritionEntry
	payments     []models.Payment
	templates    []models.ConsentTemplate
	signed       []models.SignedConsent

	err error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// WithError forces every subsequent operation to fail with err. Pass nil to
// clear.
func (m *Memory) WithError(err error) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

func (m *Memory) CreateClient(_ context.Context, c *models.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	m.clients = append(m.clients, *c)
	return nil
}

func (m *Memory) ListClients(context.Context) ([]models.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.Client, len(m.clients))
	copy(out, m.clients)
	return out, nil
}

func (m *Memory) GetClient(_ context.Context, id string) (*models.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.clients {
		if m.clients[i].ID == id {
			c := m.clients[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateMeasurement(_ context.Context, rec *models.Measurement) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	m.measurements = append(m.measurements, *rec)
	return nil
}

func (m *Memory) ListMeasurementsByClient(_ context.Context, clientID string) ([]models.Measurement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []models.Measurement{}
	for _, rec := range m.measurements {
		if rec.ClientID == clientID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *Memory) ListProgressMeasurements(_ context.Context, clientID string) ([]models.Measurement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []models.Measurement{}
	for _, rec := range m.measurements {
		if rec.ClientID != clientID {
			continue
		}
		if rec.OneRMKg == nil || rec.BodyweightKg == nil {
			continue
		}
		if *rec.OneRMKg <= 0 || *rec.BodyweightKg <= 0 {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (m *Memory) CreateSession(_ context.Context, s *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	m.sessions = append(m.sessions, *s)
	return nil
}

func (m *Memory) ListSessionsByClient(_ context.Context, clientID string) ([]models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []models.Session{}
	for _, s := range m.sessions {
		if s.ClientID == clientID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *Memory) GetSession(_ context.Context, id string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.sessions {
		if m.sessions[i].ID == id {
			s := m.sessions[i]
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) MarkSessionAttendance(_ context.Context, sessionID, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}

	var sess *models.Session
	for i := range m.sessions {
		if m.sessions[i].ID == sessionID {
			sess = &m.sessions[i]
			break
		}
	}
	if sess == nil {
		return ErrNotFound
	}
	if sess.Terminal() {
		return ErrSessionAlreadyFinal
	}

	sess.Status = status

	if status == models.SessionCompleted {
		for i := range m.clients {
			if m.clients[i].ID != sess.ClientID {
				continue
			}
			if rem := m.clients[i].SessionsRemaining; rem != nil && *rem > 0 {
				next := *rem - 1
				m.clients[i].SessionsRemaining = &next
			}
			break
		}
	}
	return nil
}

func (m *Memory) CreateWorkoutLog(_ context.Context, w *models.WorkoutLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	m.workouts = append(m.workouts, *w)
	return nil
}

func (m *Memory) ListWorkoutLogsByClient(_ context.Context, clientID string) ([]models.WorkoutLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []models.WorkoutLog{}
	for _, w := range m.workouts {
		if w.ClientID == clientID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *Memory) CreateNutritionEntry(_ context.Context, n *models.NutritionEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	m.nutrition = append(m.nutrition, *n)
	return nil
}

func (m *Memory) ListNutritionByClient(_ context.Context, clientID string) ([]models.NutritionEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []models.NutritionEntry{}
	for _, n := range m.nutrition {
		if n.ClientID == clientID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *Memory) CreatePayment(_ context.Context, p *models.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	m.payments = append(m.payments, *p)
	return nil
}

func (m *Memory) ListPaymentsByClient(_ context.Context, clientID string) ([]models.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []models.Payment{}
	for _, p := range m.payments {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *Memory) CreateConsentTemplate(_ context.Context, t *models.ConsentTemplate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	m.templates = append(m.templates, *t)
	return nil
}

func (m *Memory) CreateSignedConsent(_ context.Context, s *models.SignedConsent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	m.signed = append(m.signed, *s)
	return nil
}

func (m *Memory) Ping(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return ErrUnavailable
	}
	return nil
}

func (m *Memory) Tables(context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return []string{
		"clients", "measurements", "sessions", "workout_logs",
		"nutrition_entries", "payments", "consent_templates", "signed_consents",
	}, nil
}
