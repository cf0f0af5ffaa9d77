package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitcoach-backend/models"
	"fitcoach-backend/services"
	"fitcoach-backend/utils"
)

type ConsentController struct {
	Svc *services.ConsentService
}

func NewConsentController(svc *services.ConsentService) *ConsentController {
	return &ConsentController{Svc: svc}
}

// POST /consent/templates
func (ctrl *ConsentController) CreateTemplate(c *gin.Context) {
	var t models.ConsentTemplate
	if err := c.ShouldBindJSON(&t); err != nil {
		utils.JSONDetailError(c, http.StatusBadRequest, "invalid template payload", err.Error())
		return
	}

	if err := ctrl.Svc.CreateTemplate(c.Request.Context(), &t); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": t.ID})
}

type signConsentRequest struct {
	ClientID        string `json:"client_id" binding:"required"`
	ClientName      string `json:"client_name" binding:"required"`
	TemplateID      string `json:"template_id" binding:"required"`
	TemplateTitle   string `json:"template_title" binding:"required"`
	TemplateVersion string `json:"template_version" binding:"required"`
	SignatureText   string `json:"signature_text" binding:"required"`
	MediaConsent    *bool  `json:"media_consent"`
}

// POST /consent/sign
func (ctrl *ConsentController) SignConsent(c *gin.Context) {
	var req signConsentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONDetailError(c, http.StatusBadRequest, "invalid sign request", err.Error())
		return
	}

	mediaConsent := true
	if req.MediaConsent != nil {
		mediaConsent = *req.MediaConsent
	}

	signed := models.SignedConsent{
		ClientID:        req.ClientID,
		ClientName:      req.ClientName,
		TemplateID:      req.TemplateID,
		TemplateTitle:   req.TemplateTitle,
		TemplateVersion: req.TemplateVersion,
		SignatureText:   req.SignatureText,
		MediaConsent:    mediaConsent,
	}

	if err := ctrl.Svc.Sign(c.Request.Context(), &signed); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": signed.ID, "pdf": signed.PDFFilename})
}
