package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"fitcoach-backend/store"
)

// SystemController serves the liveness and diagnostic endpoints.
type SystemController struct {
	Store        store.Store
	DatabaseName string
}

func NewSystemController(s store.Store, databaseName string) *SystemController {
	return &SystemController{Store: s, DatabaseName: databaseName}
}

// GET /
func (ctrl *SystemController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "MIND X MUSCLE Backend Running"})
}

// GET /test — reports backend/store status without failing the request.
func (ctrl *SystemController) Test(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_name":     "❌ Not Set",
		"database_url":      "❌ Not Set",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if os.Getenv("DATABASE_URL") != "" || os.Getenv("MYSQL_URL") != "" {
		response["database_url"] = "✅ Set"
	}
	if os.Getenv("DATABASE_NAME") != "" || ctrl.DatabaseName != "" {
		response["database_name"] = "✅ Set"
	}

	ctx := c.Request.Context()
	if err := ctrl.Store.Ping(ctx); err != nil {
		c.JSON(http.StatusOK, response)
		return
	}

	response["database"] = "✅ Available"
	response["connection_status"] = "Connected"

	if tables, err := ctrl.Store.Tables(ctx); err == nil {
		response["collections"] = tables
		response["database"] = "✅ Connected & Working"
	}

	c.JSON(http.StatusOK, response)
}
