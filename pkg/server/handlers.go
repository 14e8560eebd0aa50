package server

import (
	"Souq/handler"
)

type Handlers struct {
	Order   *handler.Order
	Promo   *handler.Promo
	Loyalty *handler.Loyalty
	Tariff  *handler.Tariff
}
