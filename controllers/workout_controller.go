package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitcoach-backend/models"
	"fitcoach-backend/services"
	"fitcoach-backend/utils"
)

type WorkoutController struct {
	Svc *services.WorkoutService
}

func NewWorkoutController(svc *services.WorkoutService) *WorkoutController {
	return &WorkoutController{Svc: svc}
}

// POST /workouts/log
func (ctrl *WorkoutController) LogWorkout(c *gin.Context) {
	var entry models.WorkoutLog
	if err := c.ShouldBindJSON(&entry); err != nil {
		utils.JSONDetailError(c, http.StatusBadRequest, "invalid workout payload", err.Error())
		return
	}

	if err := ctrl.Svc.Log(c.Request.Context(), &entry); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": entry.ID})
}

// GET /clients/:client_id/workouts
func (ctrl *WorkoutController) ListByClient(c *gin.Context) {
	out, err := ctrl.Svc.ListByClient(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
