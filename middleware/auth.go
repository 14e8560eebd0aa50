package middleware

import (
	"net/http"
	"strings"

	pkgctx "Souq/pkg/context"
	"Souq/pkg/jwt"
	"Souq/pkg/response"

	"github.com/gin-gonic/gin"
)

const RoleAdmin = "admin"

func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, secret)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "invalid or missing token")
			return
		}
		c.Set(pkgctx.CtxClientID, claims.ClientID)
		c.Set(pkgctx.CtxRole, claims.Role)
		c.Next()
	}
}

// OptionalAuth attaches the client identity when a valid token is present
// and lets the request through either way. Guest checkout depends on it.
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseBearer(c, secret); ok {
			c.Set(pkgctx.CtxClientID, claims.ClientID)
			c.Set(pkgctx.CtxRole, claims.Role)
		}
		c.Next()
	}
}

func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(pkgctx.CtxRole) != role {
			response.Abort(c, http.StatusForbidden, "forbidden")
			return
		}
		c.Next()
	}
}

func parseBearer(c *gin.Context, secret []byte) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}
	claims, err := jwt.ParseToken(secret, parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}
