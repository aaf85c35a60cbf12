//go:build wireinject
// +build wireinject

package di

import (
	"lendit/config"
	"lendit/infras/kafka"
	"lendit/infras/otel"
	"lendit/infras/postgres"
	"lendit/infras/redis"
	"lendit/shared/cache"
	"lendit/transport/http"
	"lendit/transport/http/middleware"
	"lendit/transport/http/router"

	bookingRepository "lendit/internal/domains/booking/repository"
	bookingService "lendit/internal/domains/booking/service"
	itemRepository "lendit/internal/domains/item/repository"
	itemService "lendit/internal/domains/item/service"
	requestRepository "lendit/internal/domains/request/repository"
	requestService "lendit/internal/domains/request/service"
	userRepository "lendit/internal/domains/user/repository"
	userService "lendit/internal/domains/user/service"

	bookingHandler "lendit/internal/handlers/booking"
	itemHandler "lendit/internal/handlers/item"
	requestHandler "lendit/internal/handlers/request"
	userHandler "lendit/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var itemDomain = wire.NewSet(
	itemRepository.New,
	itemRepository.NewComment,
	itemService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var requestDomain = wire.NewSet(
	requestRepository.New,
	requestService.New,
)

var domains = wire.NewSet(
	userDomain,
	itemDomain,
	bookingDomain,
	requestDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	userHandler.New,
	itemHandler.New,
	bookingHandler.New,
	requestHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
