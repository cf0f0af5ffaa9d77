package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitcoach-backend/models"
	"fitcoach-backend/services"
	"fitcoach-backend/utils"
)

type MeasurementController struct {
	Svc *services.MeasurementService
}

func NewMeasurementController(svc *services.MeasurementService) *MeasurementController {
	return &MeasurementController{Svc: svc}
}

// POST /measurements
func (ctrl *MeasurementController) AddMeasurement(c *gin.Context) {
	var m models.Measurement
	if err := c.ShouldBindJSON(&m); err != nil {
		utils.JSONDetailError(c, http.StatusBadRequest, "invalid measurement payload", err.Error())
		return
	}

	if err := ctrl.Svc.Add(c.Request.Context(), &m); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": m.ID})
}

// GET /clients/:client_id/measurements
func (ctrl *MeasurementController) ListByClient(c *gin.Context) {
	out, err := ctrl.Svc.ListByClient(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /clients/:client_id/progress/relative-strength
func (ctrl *MeasurementController) Progress(c *gin.Context) {
	out, err := ctrl.Svc.Progress(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type relativeStrengthRequest struct {
	OneRMKg      *float64 `json:"one_rm_kg" binding:"required"`
	BodyweightKg *float64 `json:"bodyweight_kg" binding:"required"`
	Date         *string  `json:"date"`
}

// POST /relative-strength
func (ctrl *MeasurementController) RelativeStrength(c *gin.Context) {
	var req relativeStrengthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONDetailError(c, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}

	rs, err := services.RelativeStrength(*req.OneRMKg, *req.BodyweightKg)
	if err != nil {
		if errors.Is(err, services.ErrNonPositiveBodyweight) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client_id":         "",
		"date":              req.Date,
		"one_rm_kg":         *req.OneRMKg,
		"bodyweight_kg":     *req.BodyweightKg,
		"relative_strength": rs,
	})
}
