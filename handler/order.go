package handler

import (
	"Souq/config"
	"Souq/middleware"
	pkgctx "Souq/pkg/context"
	"Souq/pkg/response"
	"Souq/service"
	"Souq/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Order struct {
	Config       *config.Config
	OrderService service.IOrderService
}

func (o *Order) RegisterRouter(r gin.IRouter) {
	secret := []byte(o.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	orders := r.Group("/v1/orders")
	orders.POST("", optional, pkgctx.Wrap(o.Create))
	orders.GET("/list", authorize, pkgctx.Wrap(o.List))
	orders.GET("/:sn", optional, pkgctx.Wrap(o.Get))
	orders.PATCH("/:sn/status", authorize, middleware.RequireRole(middleware.RoleAdmin), pkgctx.Wrap(o.UpdateStatus))
}

func requester(c *gin.Context) *types.Requester {
	who := &types.Requester{
		IP:          c.ClientIP(),
		CartSession: c.GetHeader("X-Cart-Session"),
	}
	if id := pkgctx.GetClientID(c); id > 0 {
		who.ClientID = &id
	}
	return who
}

func (o *Order) Create(c *gin.Context) error {
	var req types.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	view, err := o.OrderService.CreateOrder(c.Request.Context(), &req, requester(c))
	if err != nil {
		return bizOf(err)
	}
	response.Success(c, view)
	return nil
}

func (o *Order) Get(c *gin.Context) error {
	view, err := o.OrderService.GetOrder(c.Request.Context(), c.Param("sn"), requester(c))
	if err != nil {
		return bizOf(err)
	}
	response.Success(c, view)
	return nil
}

func (o *Order) List(c *gin.Context) error {
	clientID := pkgctx.GetClientID(c)
	cursor, _ := strconv.ParseInt(c.Query("cursor"), 10, 64)
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	list, err := o.OrderService.GetOrderList(c.Request.Context(), clientID, cursor, pageSize)
	if err != nil {
		return bizOf(err)
	}
	response.Success(c, list)
	return nil
}

func (o *Order) UpdateStatus(c *gin.Context) error {
	var req types.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	view, err := o.OrderService.UpdateStatus(c.Request.Context(), c.Param("sn"), req.Status)
	if err != nil {
		return bizOf(err)
	}
	response.Success(c, view)
	return nil
}
