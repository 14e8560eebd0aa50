package handler

import (
	"Souq/config"
	"Souq/middleware"
	pkgctx "Souq/pkg/context"
	"Souq/pkg/response"
	"Souq/service"

	"github.com/gin-gonic/gin"
)

type Loyalty struct {
	Config         *config.Config
	LoyaltyService service.ILoyaltyService
}

func (l *Loyalty) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(l.Config.Jwt.Secret))
	loyalty := r.Group("/v1/loyalty")
	loyalty.Use(authorize)
	loyalty.GET("/balance", pkgctx.Wrap(l.Balance))
}

func (l *Loyalty) Balance(c *gin.Context) error {
	resp, err := l.LoyaltyService.Dashboard(c.Request.Context(), pkgctx.GetClientID(c))
	if err != nil {
		return bizOf(err)
	}
	response.Success(c, resp)
	return nil
}
