package services

import (
	"context"
	"sync"

	"github.com/roylee0704/gron"

	"github.com/Kopaev/Turksat-42e-RUS/internal/providers"
	"github.com/Kopaev/Turksat-42e-RUS/internal/services/interfaces"
	"github.com/Kopaev/Turksat-42e-RUS/internal/structures"
)

// RefreshScheduler optionally re-runs the refresh pipeline in the
// background. Disabled unless epg.autoRefreshInterval is set — the
// explicit /refresh call stays the primary trigger, and the service's
// single-flight guard keeps an overlap harmless either way.
type RefreshScheduler struct {
	conf    *structures.Config
	logger  providers.Logger
	service GuideServiceInterface
	cron    *gron.Cron
	mu      sync.Mutex
}

func NewRefreshScheduler(conf *structures.Config, logger providers.Logger, service GuideServiceInterface) interfaces.SchedulerInterface {
	return &RefreshScheduler{
		conf:    conf,
		logger:  logger,
		service: service,
	}
}

func (s *RefreshScheduler) Init() {
	interval := s.conf.Epg.AutoRefreshInterval
	if interval <= 0 {
		s.logger.Infof(providers.TypeApp, "Auto-refresh disabled")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cron = gron.New()
	s.cron.AddFunc(gron.Every(interval), func() {
		s.logger.Infof(providers.TypeRefresh, "Scheduled refresh starting")
		result := s.service.Refresh(context.Background())
		if result.Success {
			s.logger.Infof(providers.TypeRefresh, "Scheduled refresh done: %d channels, %d programmes", result.Channels, result.Programs)
		} else {
			s.logger.Warnf(providers.TypeRefresh, "Scheduled refresh failed, see refresh log")
		}
	})
	s.cron.Start()

	s.logger.Infof(providers.TypeApp, "Auto-refresh every %s", interval)
}

func (s *RefreshScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		s.cron.Stop()
	}
}
