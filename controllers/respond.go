package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitcoach-backend/store"
	"fitcoach-backend/utils"
)

// respondStoreError maps store failures onto HTTP statuses. Expected domain
// errors (not found, terminal session) surface as client errors; everything
// else is a service-side failure and never leaks internal detail.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found")
	case errors.Is(err, store.ErrSessionAlreadyFinal):
		utils.JSONError(c, http.StatusConflict, "session already in a terminal state")
	case errors.Is(err, store.ErrUnavailable):
		utils.JSONError(c, http.StatusServiceUnavailable, "database not available")
	default:
		log.Printf("❌ store error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
	}
}
