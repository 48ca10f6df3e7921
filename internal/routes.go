package internal

import (
	"net/http"

	"github.com/Kopaev/Turksat-42e-RUS/internal/controllers"
	"github.com/Kopaev/Turksat-42e-RUS/internal/providers"
	"github.com/Kopaev/Turksat-42e-RUS/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/refresh", http.HandlerFunc(apiController.Refresh))
	routers.Get("/guide", http.HandlerFunc(apiController.GetGuide))
	routers.Get("/cache", http.HandlerFunc(apiController.CacheInfo))
	return routers
}
