//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/infras/redis"
	"hotel/infras/s3"
	"hotel/shared/cache"
	"hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"

	"github.com/google/wire"

	authService "hotel/internal/domains/auth/service"
	dashboardService "hotel/internal/domains/dashboard/service"
	reportService "hotel/internal/domains/report/service"
	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	saleRepository "hotel/internal/domains/sale/repository"
	saleService "hotel/internal/domains/sale/service"
	userRepository "hotel/internal/domains/user/repository"
	userService "hotel/internal/domains/user/service"
	authHandler "hotel/internal/handlers/auth"
	dashboardHandler "hotel/internal/handlers/dashboard"
	reportHandler "hotel/internal/handlers/report"
	roomHandler "hotel/internal/handlers/room"
	saleHandler "hotel/internal/handlers/sale"
	userHandler "hotel/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	provideTokenRevocation,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomRepository.NewCheckIn,
	roomRepository.NewOccupancy,
	roomService.New,
)

var saleDomain = wire.NewSet(
	saleRepository.New,
	saleRepository.NewSummary,
	saleRepository.NewMonthly,
	saleRepository.NewAnalytics,
	saleService.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
	dashboardService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	roomDomain,
	saleDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	saleHandler.New,
	reportHandler.New,
	dashboardHandler.New,
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
