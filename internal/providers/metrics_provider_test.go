package providers

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"github.com/Kopaev/Turksat-42e-RUS/internal/models"
	"github.com/Kopaev/Turksat-42e-RUS/internal/structures"
)

// --- minimal stub for SnapshotStatProvider ---

type metricsTestStore struct {
	info models.CacheInfo
}

func (m *metricsTestStore) Stat() *models.CacheInfo {
	info := m.info
	return &info
}

func withFreshRegistry(t *testing.T) {
	t.Helper()
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	t.Cleanup(func() {
		prometheus.DefaultRegisterer = prometheus.NewRegistry()
		prometheus.DefaultGatherer = prometheus.DefaultRegisterer.(prometheus.Gatherer)
	})
}

func TestNoopMetrics_WhenDisabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: false},
	}
	m := NewMetricsProvider(conf, &metricsTestStore{})
	_, ok := m.(*noopMetrics)
	assert.True(t, ok, "should return noopMetrics when disabled")

	// Ensure no-op methods don't panic
	m.IncRequestsTotal("/guide", 200)
	m.ObserveRequestDuration("/guide", time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncRefreshesTotal(true)
	m.ObserveRefreshDuration(time.Second)
	m.SetChannelsMatched(14)
	m.SetProgramsMatched(1000)
}

func TestMetricsProvider_WhenEnabled(t *testing.T) {
	withFreshRegistry(t)

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf, &metricsTestStore{})
	_, ok := m.(*MetricsProvider)
	assert.True(t, ok, "should return MetricsProvider when enabled")
}

func TestMetricsProvider_IncrementCounters(t *testing.T) {
	withFreshRegistry(t)

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf, &metricsTestStore{})

	// These should not panic
	m.IncRequestsTotal("/guide", 200)
	m.IncRequestsTotal("/guide", 404)
	m.ObserveRequestDuration("/guide", 5*time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncRefreshesTotal(true)
	m.IncRefreshesTotal(false)
	m.ObserveRefreshDuration(30 * time.Second)
	m.SetChannelsMatched(14)
	m.SetProgramsMatched(2500)
}

func TestMetricsProvider_SnapshotGauges(t *testing.T) {
	withFreshRegistry(t)

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	store := &metricsTestStore{info: models.CacheInfo{Exists: true, AgeSeconds: 120, Valid: true}}
	NewMetricsProvider(conf, store)

	families, err := prometheus.DefaultGatherer.Gather()
	assert.NoError(t, err)

	found := map[string]float64{}
	for _, fam := range families {
		if fam.GetName() == "epg_snapshot_age_seconds" || fam.GetName() == "epg_snapshot_valid" {
			found[fam.GetName()] = fam.GetMetric()[0].GetGauge().GetValue()
		}
	}
	assert.Equal(t, float64(120), found["epg_snapshot_age_seconds"])
	assert.Equal(t, float64(1), found["epg_snapshot_valid"])
}

func TestMetricsProvider_SnapshotGaugesWhenMissing(t *testing.T) {
	withFreshRegistry(t)

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	NewMetricsProvider(conf, &metricsTestStore{info: models.CacheInfo{Exists: false}})

	families, err := prometheus.DefaultGatherer.Gather()
	assert.NoError(t, err)

	for _, fam := range families {
		switch fam.GetName() {
		case "epg_snapshot_age_seconds":
			assert.Equal(t, float64(-1), fam.GetMetric()[0].GetGauge().GetValue())
		case "epg_snapshot_valid":
			assert.Equal(t, float64(0), fam.GetMetric()[0].GetGauge().GetValue())
		}
	}
}

func TestHttpStatusBucket(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{100, "1xx"},
		{200, "2xx"},
		{201, "2xx"},
		{301, "3xx"},
		{400, "4xx"},
		{404, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, httpStatusBucket(tt.code))
	}
}
