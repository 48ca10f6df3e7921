package controllers

import (
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/Kopaev/Turksat-42e-RUS/internal/providers"
	"github.com/Kopaev/Turksat-42e-RUS/internal/services"
)

type ApiController struct {
	logger  providers.Logger
	service services.GuideServiceInterface
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
}

func NewApiController(logger providers.Logger, service services.GuideServiceInterface, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
		metrics: metrics,
	}
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func writeJSON(w http.ResponseWriter, payload any) {
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// Refresh re-runs the whole pipeline synchronously. The body always
// carries the run log; failure tiers are reported via success=false with
// HTTP 200, so the client can replay the log either way.
func (ac *ApiController) Refresh(w http.ResponseWriter, r *http.Request) {
	ac.logger.Debugf(providers.GetLogTypeByRequestType(r.Method), "%s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)

	start := time.Now()
	result := ac.service.Refresh(r.Context())

	ac.metrics.IncRefreshesTotal(result.Success)
	ac.metrics.ObserveRefreshDuration(time.Since(start))
	if result.Success {
		ac.metrics.SetChannelsMatched(result.Channels)
		ac.metrics.SetProgramsMatched(result.Programs)
	}

	writeJSON(w, result)
}

// GetGuide answers date/channel queries. Rendered responses are cached
// per (date, channel); the cache is cleared whenever a refresh lands.
func (ac *ApiController) GetGuide(w http.ResponseWriter, r *http.Request) {
	ac.logger.Debugf(providers.GetLogTypeByRequestType(r.Method), "%s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)

	date := r.URL.Query().Get("date")
	channel := r.URL.Query().Get("channel")

	ac.serveFromCacheOrCompute(w, "guide:"+date+":"+channel, func() (any, error) {
		return ac.service.Query(date, channel), nil
	})
}

// CacheInfo reports snapshot freshness; never cached, its age ticks.
func (ac *ApiController) CacheInfo(w http.ResponseWriter, r *http.Request) {
	ac.logger.Debugf(providers.GetLogTypeByRequestType(r.Method), "%s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)

	writeJSON(w, ac.service.Stat())
}
