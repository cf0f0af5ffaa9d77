package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitcoach-backend/models"
	"fitcoach-backend/services"
	"fitcoach-backend/utils"
)

type SessionController struct {
	Svc *services.SessionService
}

func NewSessionController(svc *services.SessionService) *SessionController {
	return &SessionController{Svc: svc}
}

// POST /sessions
func (ctrl *SessionController) BookSession(c *gin.Context) {
	var sess models.Session
	if err := c.ShouldBindJSON(&sess); err != nil {
		utils.JSONDetailError(c, http.StatusBadRequest, "invalid session payload", err.Error())
		return
	}

	if err := ctrl.Svc.Book(c.Request.Context(), &sess); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": sess.ID})
}

// GET /clients/:client_id/sessions
func (ctrl *SessionController) ListByClient(c *gin.Context) {
	out, err := ctrl.Svc.ListByClient(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type attendanceRequest struct {
	Status string `json:"status" binding:"required"`
}

// POST /sessions/:id/attendance
func (ctrl *SessionController) UpdateAttendance(c *gin.Context) {
	var req attendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONDetailError(c, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}

	if err := ctrl.Svc.MarkAttendance(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		if errors.Is(err, services.ErrInvalidAttendanceStatus) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
