package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitcoach-backend/models"
	"fitcoach-backend/services"
	"fitcoach-backend/utils"
)

type PaymentController struct {
	Svc *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: svc}
}

// POST /payments
func (ctrl *PaymentController) CreatePayment(c *gin.Context) {
	var p models.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONDetailError(c, http.StatusBadRequest, "invalid payment payload", err.Error())
		return
	}

	if err := ctrl.Svc.Create(c.Request.Context(), &p); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": p.ID})
}

// GET /clients/:client_id/payments
func (ctrl *PaymentController) ListByClient(c *gin.Context) {
	out, err := ctrl.Svc.ListByClient(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
