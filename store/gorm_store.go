package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fitcoach-backend/models"
)

// gormStore persists records to MySQL through GORM. Record identifiers are
// uuid strings assigned on insert; list queries are ordered by created_at so
// callers see insertion order.
type gormStore struct {
	DB *gorm.DB
}

// NewGorm wraps a connected *gorm.DB in the Store contract.
func NewGorm(db *gorm.DB) Store {
	return &gormStore{DB: db}
}

// translate maps driver-level failures onto the store sentinels so
// controllers never see raw GORM errors.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return ErrUnavailable
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return ErrUnavailable
	}
	return err
}

func newID() string {
	return uuid.NewString()
}

func (g *gormStore) CreateClient(ctx context.Context, client *models.Client) error {
	if client.ID == "" {
		client.ID = newID()
	}
	return translate(g.DB.WithContext(ctx).Create(client).Error)
}

func (g *gormStore) ListClients(ctx context.Context) ([]models.Client, error) {
	out := []models.Client{}
	err := g.DB.WithContext(ctx).Order("created_at ASC").Find(&out).Error
	return out, translate(err)
}

func (g *gormStore) GetClient(ctx context.Context, id string) (*models.Client, error) {
	var c models.Client
	if err := g.DB.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (g *gormStore) CreateMeasurement(ctx context.Context, m *models.Measurement) error {
	if m.ID == "" {
		m.ID = newID()
	}
	return translate(g.DB.WithContext(ctx).Create(m).Error)
}

func (g *gormStore) ListMeasurementsByClient(ctx context.Context, clientID string) ([]models.Measurement, error) {
	out := []models.Measurement{}
	err := g.DB.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&out).Error
	return out, translate(err)
}

func (g *gormStore) ListProgressMeasurements(ctx context.Context, clientID string) ([]models.Measurement, error) {
	out := []models.Measurement{}
	// NULL comparisons are false in SQL, so rows missing either field drop
	// out along with zero and negative values.
	err := g.DB.WithContext(ctx).
		Where("client_id = ? AND one_rm_kg > 0 AND bodyweight_kg > 0", clientID).
		Order("created_at ASC").
		Find(&out).Error
	return out, translate(err)
}

func (g *gormStore) CreateSession(ctx context.Context, s *models.Session) error {
	if s.ID == "" {
		s.ID = newID()
	}
	return translate(g.DB.WithContext(ctx).Create(s).Error)
}

func (g *gormStore) ListSessionsByClient(ctx context.Context, clientID string) ([]models.Session, error) {
	out := []models.Session{}
	err := g.DB.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&out).Error
	return out, translate(err)
}

func (g *gormStore) GetSession(ctx context.Context, id string) (*models.Session, error) {
	var s models.Session
	if err := g.DB.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (g *gormStore) MarkSessionAttendance(ctx context.Context, sessionID, status string) error {
	err := g.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sess models.Session
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&sess, "id = ?", sessionID).Error; err != nil {
			return err
		}
		if sess.Terminal() {
			return ErrSessionAlreadyFinal
		}

		if err := tx.Model(&sess).Update("status", status).Error; err != nil {
			return err
		}

		if status == models.SessionCompleted {
			// Clamp at zero; a NULL counter stays NULL.
			if err := tx.Model(&models.Client{}).
				Where("id = ?", sess.ClientID).
				Update("sessions_remaining", gorm.Expr("GREATEST(sessions_remaining - 1, 0)")).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return translate(err)
}

func (g *gormStore) CreateWorkoutLog(ctx context.Context, w *models.WorkoutLog) error {
	if w.ID == "" {
		w.ID = newID()
	}
	return translate(g.DB.WithContext(ctx).Create(w).Error)
}

func (g *gormStore) ListWorkoutLogsByClient(ctx context.Context, clientID string) ([]models.WorkoutLog, error) {
	out := []models.WorkoutLog{}
	err := g.DB.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&out).Error
	return out, translate(err)
}

func (g *gormStore) CreateNutritionEntry(ctx context.Context, n *models.NutritionEntry) error {
	if n.ID == "" {
		n.ID = newID()
	}
	return translate(g.DB.WithContext(ctx).Create(n).Error)
}

func (g *gormStore) ListNutritionByClient(ctx context.Context, clientID string) ([]models.NutritionEntry, error) {
	out := []models.NutritionEntry{}
	err := g.DB.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&out).Error
	return out, translate(err)
}

func (g *gormStore) CreatePayment(ctx context.Context, p *models.Payment) error {
	if p.ID == "" {
		p.ID = newID()
	}
	return translate(g.DB.WithContext(ctx).Create(p).Error)
}

func (g *gormStore) ListPaymentsByClient(ctx context.Context, clientID string) ([]models.Payment, error) {
	out := []models.Payment{}
	err := g.DB.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&out).Error
	return out, translate(err)
}

func (g *gormStore) CreateConsentTemplate(ctx context.Context, t *models.ConsentTemplate) error {
	if t.ID == "" {
		t.ID = newID()
	}
	return translate(g.DB.WithContext(ctx).Create(t).Error)
}

func (g *gormStore) CreateSignedConsent(ctx context.Context, s *models.SignedConsent) error {
	if s.ID == "" {
		s.ID = newID()
	}
	return translate(g.DB.WithContext(ctx).Create(s).Error)
}

func (g *gormStore) Ping(ctx context.Context) error {
	sqlDB, err := g.DB.DB()
	if err != nil {
		return ErrUnavailable
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return ErrUnavailable
	}
	return nil
}

func (g *gormStore) Tables(ctx context.Context) ([]string, error) {
	tables, err := g.DB.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		return nil, translate(err)
	}
	if len(tables) > 10 {
		tables = tables[:10]
	}
	return tables, nil
}
