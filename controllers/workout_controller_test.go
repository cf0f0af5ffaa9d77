package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"fitcoach-backend/store"
)

func TestLogWorkoutDefaultsSource(t *testing.T) {
	r := newTestRouter(store.NewMemory())

	rec := doJSON(t, r, http.MethodPost, "/workouts/log", map[string]any{
		"client_id": "c1",
		"date":      "2026-08-01",
		"exercise":  "Back Squat",
		"sets":      5,
		"reps":      5,
		"weight_kg": 100,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/clients/c1/workouts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	logs := decodeList(t, rec)
	require.Len(t, logs, 1)
	require.Equal(t, "session", logs[0]["source"])
}

func TestLogWorkoutRejectsBadDateAndSource(t *testing.T) {
	r := newTestRouter(store.NewMemory())

	rec := doJSON(t, r, http.MethodPost, "/workouts/log", map[string]any{
		"client_id": "c1",
		"date":      "01-08-2026",
		"exercise":  "Back Squat",
		"sets":      5,
		"reps":      5,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/workouts/log", map[string]any{
		"client_id": "c1",
		"date":      "2026-08-01",
		"exercise":  "Back Squat",
		"sets":      5,
		"reps":      5,
		"source":    "gym",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddNutritionEntryValidatesMeal(t *testing.T) {
	r := newTestRouter(store.NewMemory())

	rec := doJSON(t, r, http.MethodPost, "/nutrition", map[string]any{
		"client_id": "c1",
		"date":      "2026-08-01",
		"meal":      "brunch",
		"item":      "Oats",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/nutrition", map[string]any{
		"client_id": "c1",
		"date":      "2026-08-01",
		"meal":      "breakfast",
		"item":      "Oats",
		"calories":  350,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/clients/c1/nutrition", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeList(t, rec), 1)
}
