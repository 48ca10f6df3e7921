//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"github.com/Kopaev/Turksat-42e-RUS/internal"
	"github.com/Kopaev/Turksat-42e-RUS/internal/controllers"
	"github.com/Kopaev/Turksat-42e-RUS/internal/epg"
	"github.com/Kopaev/Turksat-42e-RUS/internal/providers"
	"github.com/Kopaev/Turksat-42e-RUS/internal/services"
	"github.com/Kopaev/Turksat-42e-RUS/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		epg.NewMatcher,
		epg.NewParser,
		epg.NewBuilder,
		epg.NewFetcher,
		epg.NewStore,
		wire.Bind(new(providers.SnapshotStatProvider), new(*epg.Store)),

		services.NewGuideService,
		services.NewRefreshScheduler,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
