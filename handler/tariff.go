package handler

import (
	"Souq/config"
	"Souq/models"
	pkgctx "Souq/pkg/context"
	"Souq/pkg/response"
	"Souq/service"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Tariff struct {
	Config        *config.Config
	TariffService service.ITariffService
}

func (t *Tariff) RegisterRouter(r gin.IRouter) {
	delivery := r.Group("/v1/delivery")
	delivery.GET("/price", pkgctx.Wrap(t.Price))
	delivery.GET("/wilayas", pkgctx.Wrap(t.Wilayas))
}

func (t *Tariff) Price(c *gin.Context) error {
	wilayaID, err := strconv.ParseInt(c.Query("wilaya_id"), 10, 64)
	if err != nil || wilayaID <= 0 {
		return response.NewError(http.StatusBadRequest, "wilaya_id is required")
	}
	deliveryType := models.DeliveryType(c.Query("type"))
	if !deliveryType.Valid() {
		return response.NewError(http.StatusBadRequest, "type must be DOMICILE or STOPDESK")
	}

	quote, err := t.TariffService.Quote(c.Request.Context(), wilayaID, deliveryType)
	if err != nil {
		return bizOf(err)
	}
	response.Success(c, quote)
	return nil
}

func (t *Tariff) Wilayas(c *gin.Context) error {
	ws, err := t.TariffService.ListWilayas(c.Request.Context())
	if err != nil {
		return bizOf(err)
	}
	response.Success(c, ws)
	return nil
}
