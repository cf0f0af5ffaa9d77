package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitcoach-backend/models"
	"fitcoach-backend/services"
	"fitcoach-backend/utils"
)

type ClientController struct {
	Svc *services.ClientService
}

func NewClientController(svc *services.ClientService) *ClientController {
	return &ClientController{Svc: svc}
}

// POST /clients
func (ctrl *ClientController) CreateClient(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		utils.JSONDetailError(c, http.StatusBadRequest, "invalid client payload", err.Error())
		return
	}

	if err := ctrl.Svc.Create(c.Request.Context(), &client); err != nil {
		if errors.Is(err, services.ErrSessionsExceedTotal) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": client.ID})
}

// GET /clients
func (ctrl *ClientController) ListClients(c *gin.Context) {
	clients, err := ctrl.Svc.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}
