//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewOrder,
	NewClient,
	NewPromo,
	NewLoyalty,
	NewTariff,
	NewProduct,
	NewCart,
)
