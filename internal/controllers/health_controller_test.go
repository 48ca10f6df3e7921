package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kopaev/Turksat-42e-RUS/internal/models"
	"github.com/Kopaev/Turksat-42e-RUS/internal/testutil"
)

func TestHealth_OK(t *testing.T) {
	svc := &testutil.MockGuideService{
		StatResult: &models.CacheInfo{Exists: true, AgeSeconds: 300, Valid: true},
	}
	hc := NewHealthController(svc)

	rr := httptest.NewRecorder()
	hc.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "ok", got["status"])
	assert.Equal(t, float64(300), got["snapshot_age_seconds"])
	assert.Equal(t, true, got["snapshot_valid"])
}

func TestHealth_MethodNotAllowed(t *testing.T) {
	hc := NewHealthController(&testutil.MockGuideService{})

	rr := httptest.NewRecorder()
	hc.Health(rr, httptest.NewRequest(http.MethodPost, "/health", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0h0m42s", formatDuration(42*1e9))
	assert.Equal(t, "26h3m4s", formatDuration((26*3600+3*60+4)*1e9))
}
