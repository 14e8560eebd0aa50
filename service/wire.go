package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(TariffService), "*"),
	wire.Bind(new(ITariffService), new(*TariffService)),

	wire.Struct(new(DiscountService), "*"),
	wire.Bind(new(IDiscountService), new(*DiscountService)),

	wire.Struct(new(LoyaltyService), "*"),
	wire.Bind(new(ILoyaltyService), new(*LoyaltyService)),

	wire.Struct(new(OrderService), "*"),
	wire.Bind(new(IOrderService), new(*OrderService)),
)
