package models

import "time"

// ConsentTemplate is a versioned legal text clients sign against.
type ConsentTemplate struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title   string `gorm:"size:255" json:"title" binding:"required"`
	Version string `gorm:"size:32" json:"version" binding:"required"`
	Content string `gorm:"type:text" json:"content" binding:"required"`
}

// SignedConsent is the immutable record of a client signing a template.
// It is created once by the sign endpoint and never updated.
type SignedConsent struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ClientID        string `gorm:"size:36;index" json:"client_id"`
	ClientName      string `gorm:"size:255" json:"client_name"`
	TemplateID      string `gorm:"size:36" json:"template_id"`
	TemplateTitle   string `gorm:"size:255" json:"template_title"`
	TemplateVersion string `gorm:"size:32" json:"template_version"`
	SignedAt        string `gorm:"size:64" json:"signed_at"`
	SignatureText   string `gorm:"size:255" json:"signature_text"`
	MediaConsent    bool   `json:"media_consent"`
	PDFFilename     string `gorm:"column:pdf_filename;size:255" json:"pdf_filename"`
}
