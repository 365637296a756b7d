//go:build wireinject
// +build wireinject

package di

import (
	"staybook/config"
	"staybook/helper"
	"staybook/infras/jwt"
	"staybook/infras/kafka"
	"staybook/infras/otel"
	"staybook/infras/postgres"
	"staybook/infras/redis"
	"staybook/infras/s3"
	"staybook/shared/cache"
	"staybook/transport/http"
	"staybook/transport/http/middleware"
	"staybook/transport/http/router"

	adminRepository "staybook/internal/domains/admin/repository"
	adminService "staybook/internal/domains/admin/service"
	authService "staybook/internal/domains/auth/service"
	bookingEvent "staybook/internal/domains/booking/event"
	bookingRepository "staybook/internal/domains/booking/repository"
	bookingService "staybook/internal/domains/booking/service"
	categoryRepository "staybook/internal/domains/category/repository"
	categoryService "staybook/internal/domains/category/service"
	customerRepository "staybook/internal/domains/customer/repository"
	customerService "staybook/internal/domains/customer/service"
	hotelRepository "staybook/internal/domains/hotel/repository"
	hotelService "staybook/internal/domains/hotel/service"
	vendorRepository "staybook/internal/domains/vender/repository"
	vendorService "staybook/internal/domains/vender/service"

	adminHandler "staybook/internal/handlers/admin"
	authHandler "staybook/internal/handlers/auth"
	bookingHandler "staybook/internal/handlers/booking"
	categoryHandler "staybook/internal/handlers/category"
	customerHandler "staybook/internal/handlers/customer"
	hotelHandler "staybook/internal/handlers/hotel"
	vendorHandler "staybook/internal/handlers/vender"
	vendorBookingHandler "staybook/internal/handlers/vendorbooking"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	NewPermissions,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var identityDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
	vendorRepository.New,
	vendorService.New,
	adminRepository.New,
	adminService.New,
	NewIdentityResolvers,
	authService.New,
)

var catalogDomain = wire.NewSet(
	categoryRepository.New,
	categoryService.New,
	hotelRepository.New,
	hotelService.New,
	NewOwnershipPolicy,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingEvent.New,
	bookingService.New,
	bookingService.NewVendor,
)

var domains = wire.NewSet(
	identityDomain,
	catalogDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	customerHandler.New,
	vendorHandler.New,
	adminHandler.New,
	categoryHandler.New,
	hotelHandler.New,
	bookingHandler.New,
	vendorBookingHandler.New,
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

func InitializeSeeder() *helper.Seeder {
	wire.Build(
		configurations,
		postgres.New,
		otel.New,
		redis.New,
		jwt.New,
		sharedHelpers,
		adminRepository.New,
		adminService.New,
		categoryRepository.New,
		categoryService.New,
		helper.NewSeeder,
	)

	return &helper.Seeder{}
}
