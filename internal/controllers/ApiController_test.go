package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kopaev/Turksat-42e-RUS/internal/models"
	"github.com/Kopaev/Turksat-42e-RUS/internal/testutil"
)

// metrics recorder scoped to controller tests
type recordingMetrics struct {
	refreshes []bool
	channels  int
	programs  int
}

func (m *recordingMetrics) IncRequestsTotal(_ string, _ int)                      {}
func (m *recordingMetrics) ObserveRequestDuration(_ string, _ time.Duration)      {}
func (m *recordingMetrics) IncCacheHits()                                         {}
func (m *recordingMetrics) IncCacheMisses()                                       {}
func (m *recordingMetrics) IncRefreshesTotal(success bool)                        { m.refreshes = append(m.refreshes, success) }
func (m *recordingMetrics) ObserveRefreshDuration(_ time.Duration)                {}
func (m *recordingMetrics) SetChannelsMatched(count int)                          { m.channels = count }
func (m *recordingMetrics) SetProgramsMatched(count int)                          { m.programs = count }

func newTestController(svc *testutil.MockGuideService, cache *testutil.MockCache, metrics *recordingMetrics) *ApiController {
	return NewApiController(&testutil.MockLogger{}, svc, cache, metrics)
}

func TestRefresh_Success(t *testing.T) {
	svc := &testutil.MockGuideService{
		RefreshResult: &models.RefreshResult{
			Success:  true,
			Channels: 14,
			Programs: 2500,
			Log:      []models.LogEntry{{Time: "10:00:00", Msg: "done", Level: "info"}},
		},
	}
	metrics := &recordingMetrics{}
	ac := newTestController(svc, testutil.NewMockCache(), metrics)

	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	rr := httptest.NewRecorder()
	ac.Refresh(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got models.RefreshResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.True(t, got.Success)
	assert.Equal(t, 14, got.Channels)
	require.Len(t, got.Log, 1)
	assert.Equal(t, "done", got.Log[0].Msg)

	assert.Equal(t, []bool{true}, metrics.refreshes)
	assert.Equal(t, 14, metrics.channels)
	assert.Equal(t, 2500, metrics.programs)
}

// Failures still answer 200 with success=false so the client can replay
// the run log.
func TestRefresh_FailureIsStill200(t *testing.T) {
	svc := &testutil.MockGuideService{
		RefreshResult: &models.RefreshResult{
			Success: false,
			Log:     []models.LogEntry{{Time: "10:00:00", Msg: "fetch failed", Level: "error"}},
		},
	}
	metrics := &recordingMetrics{}
	ac := newTestController(svc, testutil.NewMockCache(), metrics)

	rr := httptest.NewRecorder()
	ac.Refresh(rr, httptest.NewRequest(http.MethodPost, "/refresh", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.RefreshResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.False(t, got.Success)
	assert.Equal(t, []bool{false}, metrics.refreshes)
	assert.Zero(t, metrics.channels)
}

func TestGetGuide_PassesQueryParams(t *testing.T) {
	svc := &testutil.MockGuideService{}
	ac := newTestController(svc, testutil.NewMockCache(), &recordingMetrics{})

	req := httptest.NewRequest(http.MethodGet, "/guide?date=2025-11-19&channel=ntv-mir", nil)
	rr := httptest.NewRecorder()
	ac.GetGuide(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, svc.QueryCalls, 1)
	assert.Equal(t, "2025-11-19", svc.QueryCalls[0].Date)
	assert.Equal(t, "ntv-mir", svc.QueryCalls[0].Channel)
}

func TestGetGuide_DefaultsEmptyParams(t *testing.T) {
	svc := &testutil.MockGuideService{}
	ac := newTestController(svc, testutil.NewMockCache(), &recordingMetrics{})

	rr := httptest.NewRecorder()
	ac.GetGuide(rr, httptest.NewRequest(http.MethodGet, "/guide", nil))

	require.Len(t, svc.QueryCalls, 1)
	assert.Empty(t, svc.QueryCalls[0].Date)
	assert.Empty(t, svc.QueryCalls[0].Channel)
}

func TestGetGuide_ServedFromCache(t *testing.T) {
	svc := &testutil.MockGuideService{}
	cache := testutil.NewMockCache()
	cache.Set("guide:2025-11-19:all", []byte(`{"success":true,"cached":true}`))
	ac := newTestController(svc, cache, &recordingMetrics{})

	req := httptest.NewRequest(http.MethodGet, "/guide?date=2025-11-19&channel=all", nil)
	rr := httptest.NewRecorder()
	ac.GetGuide(rr, req)

	assert.Equal(t, `{"success":true,"cached":true}`, rr.Body.String())
	assert.Empty(t, svc.QueryCalls, "cache hit must not reach the service")
}

func TestGetGuide_PopulatesCache(t *testing.T) {
	svc := &testutil.MockGuideService{QueryResult: &models.QueryResult{Success: true}}
	cache := testutil.NewMockCache()
	ac := newTestController(svc, cache, &recordingMetrics{})

	rr := httptest.NewRecorder()
	ac.GetGuide(rr, httptest.NewRequest(http.MethodGet, "/guide?date=2025-11-19", nil))

	_, ok := cache.Get("guide:2025-11-19:")
	assert.True(t, ok)
}

func TestGetGuide_NoCacheSignal(t *testing.T) {
	svc := &testutil.MockGuideService{QueryResult: &models.QueryResult{Success: false, NoCache: true}}
	ac := newTestController(svc, testutil.NewMockCache(), &recordingMetrics{})

	rr := httptest.NewRecorder()
	ac.GetGuide(rr, httptest.NewRequest(http.MethodGet, "/guide", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.QueryResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.False(t, got.Success)
	assert.True(t, got.NoCache)
}

func TestCacheInfo(t *testing.T) {
	svc := &testutil.MockGuideService{
		StatResult: &models.CacheInfo{Exists: true, AgeSeconds: 120, AgeHuman: "00:02:00", SizeKB: 42.5, Valid: true},
	}
	ac := newTestController(svc, testutil.NewMockCache(), &recordingMetrics{})

	rr := httptest.NewRecorder()
	ac.CacheInfo(rr, httptest.NewRequest(http.MethodGet, "/cache", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.CacheInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.True(t, got.Exists)
	assert.Equal(t, int64(120), got.AgeSeconds)
	assert.True(t, got.Valid)
}
