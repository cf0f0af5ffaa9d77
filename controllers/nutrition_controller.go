package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitcoach-backend/models"
	"fitcoach-backend/services"
	"fitcoach-backend/utils"
)

type NutritionController struct {
	Svc *services.NutritionService
}

func NewNutritionController(svc *services.NutritionService) *NutritionController {
	return &NutritionController{Svc: svc}
}

// POST /nutrition
func (ctrl *NutritionController) AddEntry(c *gin.Context) {
	var entry models.NutritionEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		utils.JSONDetailError(c, http.StatusBadRequest, "invalid nutrition payload", err.Error())
		return
	}

	if err := ctrl.Svc.Add(c.Request.Context(), &entry); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": entry.ID})
}

// GET /clients/:client_id/nutrition
func (ctrl *NutritionController) ListByClient(c *gin.Context) {
	out, err := ctrl.Svc.ListByClient(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
