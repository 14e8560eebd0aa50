package context

import (
	"Souq/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CtxClientID = "client_id"
	CtxRole     = "role"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// handler already wrote a body, nothing left to do
			if c.Writer.Written() {
				return
			}
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(http.StatusOK, response.Response{
					Code: be.Code,
					Msg:  be.Msg,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  err.Error(),
			})
		}
	}
}

// GetClientID returns the authenticated client id, 0 when the request is a
// guest checkout that passed through OptionalAuth without a token.
func GetClientID(c *gin.Context) int64 {
	v, ok := c.Get(CtxClientID)
	if !ok {
		return 0
	}
	id, _ := v.(int64)
	return id
}
