//go:build wireinject
// +build wireinject

package di

import (
	"cowork/config"
	"cowork/infras/kafka"
	"cowork/infras/otel"
	"cowork/infras/postgres"
	"cowork/infras/redis"
	"cowork/infras/s3"
	"cowork/shared/cache"
	"cowork/shared/timezone"
	"cowork/transport/http"
	"cowork/transport/http/middleware"
	"cowork/transport/http/router"

	clientRepository "cowork/internal/domains/client/repository"
	clientService "cowork/internal/domains/client/service"
	reservationRepository "cowork/internal/domains/reservation/repository"
	reservationService "cowork/internal/domains/reservation/service"
	roomRepository "cowork/internal/domains/room/repository"
	roomService "cowork/internal/domains/room/service"
	clientHandler "cowork/internal/handlers/client"
	reservationHandler "cowork/internal/handlers/reservation"
	roomHandler "cowork/internal/handlers/room"

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
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	timezone.NewClock,
)

var clientDomain = wire.NewSet(
	clientRepository.New,
	clientService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var domains = wire.NewSet(
	clientDomain,
	roomDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	clientHandler.New,
	roomHandler.New,
	reservationHandler.New,
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
