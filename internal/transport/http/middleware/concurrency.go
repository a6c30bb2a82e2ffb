package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	resp "aquarium-tank-api/internal/transport/http/response"
)

// ConcurrencyLimit caps the requests in flight. A request waits for a slot
// until its context ends.
func ConcurrencyLimit(n int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(n)
	return func(c *gin.Context) {
		if err := sem.Acquire(c.Request.Context(), 1); err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, resp.Error(resp.MsgServerBusy))
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
