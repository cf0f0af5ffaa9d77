package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"fitcoach-backend/store"
)

func createClient(t *testing.T, r *gin.Engine, remaining, total int) string {
	t.Helper()
	rec := doJSON(t, r, http.MethodPost, "/clients", map[string]any{
		"full_name":          "Jane Doe",
		"email":              "jane@example.com",
		"sessions_total":     total,
		"sessions_remaining": remaining,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeBody(t, rec)["id"].(string)
}

func createSession(t *testing.T, r *gin.Engine, clientID string) string {
	t.Helper()
	rec := doJSON(t, r, http.MethodPost, "/sessions", map[string]any{
		"client_id":  clientID,
		"start_time": "2026-08-01T09:00:00Z",
		"end_time":   "2026-08-01T10:00:00Z",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeBody(t, rec)["id"].(string)
}

func sessionsRemaining(t *testing.T, r *gin.Engine, clientID string) float64 {
	t.Helper()
	rec := doJSON(t, r, http.MethodGet, "/clients", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, c := range decodeList(t, rec) {
		if c["id"] == clientID {
			return c["sessions_remaining"].(float64)
		}
	}
	t.Fatalf("client %s not listed", clientID)
	return 0
}

func TestBookSessionDefaultsToScheduled(t *testing.T) {
	r := newTestRouter(store.NewMemory())
	clientID := createClient(t, r, 5, 10)
	createSession(t, r, clientID)

	rec := doJSON(t, r, http.MethodGet, "/clients/"+clientID+"/sessions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sessions := decodeList(t, rec)
	require.Len(t, sessions, 1)
	require.Equal(t, "scheduled", sessions[0]["status"])
}

func TestAttendanceCompletedDecrementsCounter(t *testing.T) {
	r := newTestRouter(store.NewMemory())
	clientID := createClient(t, r, 3, 10)
	sessID := createSession(t, r, clientID)

	rec := doJSON(t, r, http.MethodPost, "/sessions/"+sessID+"/attendance",
		map[string]any{"status": "completed"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, decodeBody(t, rec)["ok"])

	require.Equal(t, 2.0, sessionsRemaining(t, r, clientID))
}

func TestAttendanceMissedAndCancelledKeepCounter(t *testing.T) {
	r := newTestRouter(store.NewMemory())
	clientID := createClient(t, r, 3, 10)

	for _, status := range []string{"missed", "cancelled"} {
		sessID := createSession(t, r, clientID)
		rec := doJSON(t, r, http.MethodPost, "/sessions/"+sessID+"/attendance",
			map[string]any{"status": status})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	require.Equal(t, 3.0, sessionsRemaining(t, r, clientID))
}

func TestAttendanceRepeatedCompletedIsRefused(t *testing.T) {
	r := newTestRouter(store.NewMemory())
	clientID := createClient(t, r, 3, 10)
	sessID := createSession(t, r, clientID)

	rec := doJSON(t, r, http.MethodPost, "/sessions/"+sessID+"/attendance",
		map[string]any{"status": "completed"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/sessions/"+sessID+"/attendance",
		map[string]any{"status": "completed"})
	require.Equal(t, http.StatusConflict, rec.Code)

	// The counter moved exactly once.
	require.Equal(t, 2.0, sessionsRemaining(t, r, clientID))
}

func TestAttendanceRejectsInvalidStatus(t *testing.T) {
	r := newTestRouter(store.NewMemory())
	clientID := createClient(t, r, 3, 10)
	sessID := createSession(t, r, clientID)

	for _, status := range []string{"scheduled", "done", ""} {
		rec := doJSON(t, r, http.MethodPost, "/sessions/"+sessID+"/attendance",
			map[string]any{"status": status})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	}

	require.Equal(t, 3.0, sessionsRemaining(t, r, clientID))
}

func TestAttendanceUnknownSession(t *testing.T) {
	r := newTestRouter(store.NewMemory())
	createClient(t, r, 3, 10)

	rec := doJSON(t, r, http.MethodPost, "/sessions/no-such-id/attendance",
		map[string]any{"status": "completed"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListSessionsEmptyForUnknownClient(t *testing.T) {
	r := newTestRouter(store.NewMemory())

	rec := doJSON(t, r, http.MethodGet, "/clients/nobody/sessions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decodeList(t, rec))
}
