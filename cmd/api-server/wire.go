//go:build wireinject
// +build wireinject

package main

import (
	"Souq/config"
	"Souq/dao"
	"Souq/dao/cache"
	"Souq/handler"
	"Souq/pkg/client"
	"Souq/pkg/database"
	"Souq/pkg/server"
	"Souq/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		config.ProvideReferralSalt,
		server.NewGinEngine,
		cache.ProviderSet,

		wire.Struct(new(handler.Order), "*"),
		wire.Struct(new(handler.Promo), "*"),
		wire.Struct(new(handler.Loyalty), "*"),
		wire.Struct(new(handler.Tariff), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
