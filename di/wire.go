//go:build wireinject
// +build wireinject

package di

import (
	"viagem/config"
	"viagem/infras/jwt"
	"viagem/infras/kafka"
	"viagem/infras/otel"
	"viagem/infras/postgres"
	"viagem/infras/redis"
	"viagem/permissions"
	"viagem/shared/cache"
	"viagem/transport/http"
	"viagem/transport/http/middleware"
	"viagem/transport/http/router"

	accommodationRepository "viagem/internal/domains/accommodation/repository"
	accommodationService "viagem/internal/domains/accommodation/service"
	availabilityRepository "viagem/internal/domains/availability/repository"
	availabilityService "viagem/internal/domains/availability/service"
	bookingRepository "viagem/internal/domains/booking/repository"
	bookingService "viagem/internal/domains/booking/service"
	tourRepository "viagem/internal/domains/tour/repository"
	tourService "viagem/internal/domains/tour/service"

	accommodationHandler "viagem/internal/handlers/accommodation"
	bookingHandler "viagem/internal/handlers/booking"
	tourHandler "viagem/internal/handlers/tour"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	permissions.Get,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var accommodationDomain = wire.NewSet(
	accommodationRepository.New,
	accommodationService.New,
)

var tourDomain = wire.NewSet(
	tourRepository.New,
	tourService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityRepository.New,
	availabilityService.New,
)

var domains = wire.NewSet(
	accommodationDomain,
	tourDomain,
	bookingDomain,
	availabilityDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	accommodationHandler.New,
	tourHandler.New,
	bookingHandler.New,
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
