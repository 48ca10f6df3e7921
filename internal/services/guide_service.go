package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/samber/lo"
	"go.uber.org/atomic"

	"github.com/Kopaev/Turksat-42e-RUS/internal/epg"
	"github.com/Kopaev/Turksat-42e-RUS/internal/models"
	"github.com/Kopaev/Turksat-42e-RUS/internal/providers"
	"github.com/Kopaev/Turksat-42e-RUS/internal/structures"
)

// DefaultChannel selects every channel of the requested date.
const DefaultChannel = "all"

type GuideServiceInterface interface {
	Refresh(ctx context.Context) *models.RefreshResult
	Query(date, channel string) *models.QueryResult
	Stat() *models.CacheInfo
}

// GuideService runs the acquire→parse→build→persist pipeline and answers
// queries against the persisted snapshot. Queries never touch the
// fetcher or parser; they only read what the last refresh wrote.
type GuideService struct {
	conf    *structures.Config
	logger  providers.Logger
	fetcher *epg.Fetcher
	builder *epg.Builder
	store   *epg.Store
	cache   providers.CacheProviderInterface

	refreshing atomic.Bool
	now        func() time.Time
}

func NewGuideService(conf *structures.Config, logger providers.Logger, fetcher *epg.Fetcher, builder *epg.Builder, store *epg.Store, cache providers.CacheProviderInterface) GuideServiceInterface {
	return &GuideService{
		conf:    conf,
		logger:  logger,
		fetcher: fetcher,
		builder: builder,
		store:   store,
		cache:   cache,
		now:     time.Now,
	}
}

// Refresh rebuilds the snapshot wholesale. Exactly one refresh runs at a
// time: an overlapping call fails fast instead of racing the writer. All
// failure tiers return success=false with the step log; nothing retries.
func (gs *GuideService) Refresh(ctx context.Context) *models.RefreshResult {
	log := epg.NewRunLog(gs.logger)

	if !gs.refreshing.CompareAndSwap(false, true) {
		log.Warnf("refresh already in progress, try again later")
		return &models.RefreshResult{Success: false, Log: log.Entries()}
	}
	defer gs.refreshing.Store(false)

	ctx, cancel := context.WithTimeout(ctx, gs.conf.Epg.RefreshTimeout)
	defer cancel()

	log.Infof("starting EPG refresh...")

	doc, err := gs.fetcher.Acquire(ctx, log)
	if err != nil {
		log.Errorf("feed acquisition failed: %s", err)
		return &models.RefreshResult{Success: false, Log: log.Entries()}
	}

	if ctx.Err() != nil {
		log.Errorf("refresh aborted: %s", ctx.Err())
		return &models.RefreshResult{Success: false, Log: log.Entries()}
	}

	log.Infof("parsing guide...")
	snapshot, stats, err := gs.builder.Build(doc)
	if err != nil {
		var zero *epg.ZeroChannelsError
		if errors.As(err, &zero) {
			log.Warnf("no known channel found among %d in the feed", zero.Seen)
		} else {
			log.Errorf("guide build failed: %s", err)
		}
		return &models.RefreshResult{Success: false, Log: log.Entries()}
	}
	log.Infof("channels in feed: %d, matched: %d", stats.ChannelsSeen, stats.ChannelsMatched)
	log.Infof("programmes in feed: %d, matched: %d", stats.ProgramsSeen, stats.ProgramsMatched)

	log.Infof("writing snapshot...")
	if err := gs.store.Write(snapshot); err != nil {
		log.Errorf("snapshot write failed: %s", err)
		return &models.RefreshResult{Success: false, Log: log.Entries()}
	}
	gs.cache.Clear()

	info := gs.store.Stat()
	log.Infof("snapshot saved: %.2f KB, %d channels, %d programmes",
		info.SizeKB, stats.ChannelsMatched, stats.ProgramsMatched)
	log.Infof("done")

	return &models.RefreshResult{
		Success:  true,
		Log:      log.Entries(),
		Channels: stats.ChannelsMatched,
		Programs: stats.ProgramsMatched,
	}
}

// Query answers a date/channel lookup against the stored snapshot.
// Empty date means today in UTC; empty channel means all channels. A
// date with no entries, or a channel absent on that date, yields an
// empty programs map — only a missing or corrupt store is a failure.
func (gs *GuideService) Query(date, channel string) *models.QueryResult {
	snapshot, err := gs.store.Load()
	if err != nil {
		return &models.QueryResult{
			Success:  false,
			NoCache:  true,
			Programs: make(map[string][]*models.Program),
		}
	}

	if date == "" {
		date = gs.now().UTC().Format("2006-01-02")
	}
	if channel == "" {
		channel = DefaultChannel
	}

	dates := lo.Keys(snapshot.Programs)
	sort.Strings(dates)

	result := &models.QueryResult{
		Success:  true,
		Channels: snapshot.Channels,
		Programs: make(map[string][]*models.Program),
		Dates:    dates,
		Updated:  snapshot.Updated,
	}

	if byChannel, ok := snapshot.Programs[date]; ok {
		if channel == DefaultChannel {
			result.Programs = byChannel
		} else if programs, ok := byChannel[channel]; ok {
			result.Programs[channel] = programs
		}
	}

	return result
}

// Stat reports snapshot freshness without loading the payload.
func (gs *GuideService) Stat() *models.CacheInfo {
	return gs.store.Stat()
}
