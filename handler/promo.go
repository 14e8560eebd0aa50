package handler

import (
	"Souq/config"
	"Souq/middleware"
	pkgctx "Souq/pkg/context"
	"Souq/pkg/response"
	"Souq/service"
	"Souq/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Promo struct {
	Config          *config.Config
	DiscountService service.IDiscountService
}

func (p *Promo) RegisterRouter(r gin.IRouter) {
	optional := middleware.OptionalAuth([]byte(p.Config.Jwt.Secret))
	promo := r.Group("/v1/promo")
	promo.POST("/check", optional, pkgctx.Wrap(p.Check))
}

// Check is the pre-checkout probe. It never consumes a use.
func (p *Promo) Check(c *gin.Context) error {
	var req types.CheckPromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := p.DiscountService.Probe(c.Request.Context(), &req, requester(c))
	if err != nil {
		return bizOf(err)
	}
	response.Success(c, resp)
	return nil
}
