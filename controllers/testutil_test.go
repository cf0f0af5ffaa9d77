package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"fitcoach-backend/controllers"
	"fitcoach-backend/routes"
	"fitcoach-backend/services"
	"fitcoach-backend/store"
)

// newTestRouter builds the full route table over the given store, exactly as
// main does in production.
func newTestRouter(st store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)

	return routes.SetupRouter(
		controllers.NewSystemController(st, "fitcoach_test"),
		controllers.NewClientController(services.NewClientService(st)),
		controllers.NewMeasurementController(services.NewMeasurementService(st)),
		controllers.NewSessionController(services.NewSessionService(st)),
		controllers.NewWorkoutController(services.NewWorkoutService(st)),
		controllers.NewNutritionController(services.NewNutritionService(st)),
		controllers.NewPaymentController(services.NewPaymentService(st)),
		controllers.NewConsentController(services.NewConsentService(st)),
	)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(raw)
	} else {
		buf = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
