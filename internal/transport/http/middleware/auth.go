package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aquarium-tank-api/internal/domain"
	"aquarium-tank-api/internal/service"
	resp "aquarium-tank-api/internal/transport/http/response"
)

const KeyUser = "user"

// TokenValidator resolves a bearer token to the local user it belongs to.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (service.UserOut, error)
}

// RequireUser rejects the request with 401 unless it carries a valid bearer
// token, and stores the caller for CurrentUser.
func RequireUser(v TokenValidator, l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearer(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(resp.MsgNoToken))
			return
		}
		u, err := v.ValidateToken(c.Request.Context(), token)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrTokenExpired):
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(resp.MsgTokenExpired))
			return
		default:
			if !errors.Is(err, domain.ErrUnauthorized) {
				l.Warn("token validation failed", zap.String("rid", RequestIDOf(c)), zap.Error(err))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(resp.MsgInvalidToken))
			return
		}
		c.Set(KeyUser, u)
		c.Next()
	}
}

// CurrentUser returns the caller stored by RequireUser.
func CurrentUser(c *gin.Context) (service.UserOut, bool) {
	v, ok := c.Get(KeyUser)
	if !ok {
		return service.UserOut{}, false
	}
	u, ok := v.(service.UserOut)
	return u, ok
}

func bearer(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
