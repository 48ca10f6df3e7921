package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Kopaev/Turksat-42e-RUS/internal/models"
	"github.com/Kopaev/Turksat-42e-RUS/internal/structures"
)

// SnapshotStatProvider is the slice of the snapshot store the gauges
// need; declared here to keep providers free of the epg package.
type SnapshotStatProvider interface {
	Stat() *models.CacheInfo
}

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncRefreshesTotal(success bool)
	ObserveRefreshDuration(duration time.Duration)
	SetChannelsMatched(count int)
	SetProgramsMatched(count int)
}

type MetricsProvider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	refreshesTotal  *prometheus.CounterVec
	refreshDuration prometheus.Histogram
	channelsMatched prometheus.Gauge
	programsMatched prometheus.Gauge
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncRefreshesTotal(success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	m.refreshesTotal.WithLabelValues(result).Inc()
}

func (m *MetricsProvider) ObserveRefreshDuration(duration time.Duration) {
	m.refreshDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) SetChannelsMatched(count int) {
	m.channelsMatched.Set(float64(count))
}

func (m *MetricsProvider) SetProgramsMatched(count int) {
	m.programsMatched.Set(float64(count))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config, store SnapshotStatProvider) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "epg_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "epg_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "epg_cache_hits_total",
			Help: "Total number of response cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "epg_cache_misses_total",
			Help: "Total number of response cache misses",
		}),

		refreshesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "epg_refreshes_total",
			Help: "Total number of guide refresh runs by result",
		}, []string{"result"}),

		refreshDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "epg_refresh_duration_seconds",
			Help:    "Duration of guide refresh runs in seconds",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}),

		channelsMatched: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "epg_channels_matched",
			Help: "Channels matched in the last successful refresh",
		}),

		programsMatched: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "epg_programs_matched",
			Help: "Programmes matched in the last successful refresh",
		}),
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "epg_snapshot_age_seconds",
		Help: "Age of the stored snapshot file",
	}, func() float64 {
		info := store.Stat()
		if !info.Exists {
			return -1
		}
		return float64(info.AgeSeconds)
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "epg_snapshot_valid",
		Help: "Whether the stored snapshot is within its freshness threshold",
	}, func() float64 {
		if store.Stat().Valid {
			return 1
		}
		return 0
	})

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) IncRefreshesTotal(_ bool)                         {}
func (n *noopMetrics) ObserveRefreshDuration(_ time.Duration)           {}
func (n *noopMetrics) SetChannelsMatched(_ int)                         {}
func (n *noopMetrics) SetProgramsMatched(_ int)                         {}
