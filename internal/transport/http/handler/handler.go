// Package handler mounts one resource family per type onto the API engine.
package handler

import (
	"github.com/gin-gonic/gin"

	"aquarium-tank-api/internal/domain"
	"aquarium-tank-api/internal/service"
	"aquarium-tank-api/internal/transport/http/middleware"
)

// caller is the user RequireUser stored; handlers behind the guard always
// have one.
func caller(c *gin.Context) (service.UserOut, error) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return service.UserOut{}, domain.ErrUnauthorized
	}
	return u, nil
}
