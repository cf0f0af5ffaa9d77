package services

import (
	"context"
	"time"

	"fitcoach-backend/models"
	"fitcoach-backend/store"
	"fitcoach-backend/utils"
)

// ConsentService manages consent templates and signing.
type ConsentService struct {
	Store store.Store
}

func NewConsentService(s store.Store) *ConsentService {
	return &ConsentService{Store: s}
}

func (s *ConsentService) CreateTemplate(ctx context.Context, t *models.ConsentTemplate) error {
	return s.Store.CreateConsentTemplate(ctx, t)
}

// Sign stamps the signing time and the consent PDF filename, then persists
// the record. Only the filename string is derived; no file is produced.
func (s *ConsentService) Sign(ctx context.Context, signed *models.SignedConsent) error {
	now := time.Now().UTC()
	if signed.SignedAt == "" {
		signed.SignedAt = now.Format(time.RFC3339)
	}
	signed.PDFFilename = utils.ConsentFilename(signed.ClientName, now)
	return s.Store.CreateSignedConsent(ctx, signed)
}
