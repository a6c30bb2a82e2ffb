package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"aquarium-tank-api/internal/core/config"
	mdw "aquarium-tank-api/internal/transport/http/middleware"
)

// NewAPIEngine builds the engine: middleware in order, probes, then every
// module in reg mounted at the root. Zero limits in o switch that guard off.
func NewAPIEngine(l *zap.Logger, o config.HTTP, reg *Registry) *gin.Engine {
	r := gin.New()

	r.Use(mdw.RequestID(), mdw.Recovery(l), mdw.CORS(o.CORSOrigins))
	if o.RateLimitRPS > 0 {
		r.Use(mdw.RateLimit(rate.Limit(o.RateLimitRPS), o.RateLimitBurst))
	}
	if o.IPRateLimitRPS > 0 {
		r.Use(mdw.RateLimitPerIP(rate.Limit(o.IPRateLimitRPS), o.IPRateLimitBurst))
	}
	if o.RequestTimeoutMS > 0 {
		// also bounds the wait for a concurrency slot
		r.Use(mdw.Timeout(time.Duration(o.RequestTimeoutMS) * time.Millisecond))
	}
	if o.MaxInFlight > 0 {
		r.Use(mdw.ConcurrencyLimit(o.MaxInFlight))
	}
	if o.MaxBodyBytes > 0 {
		r.Use(mdw.MaxBodyBytes(o.MaxBodyBytes))
	}
	r.Use(mdw.Metrics(), mdw.AccessLog(l))

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	reg.MountAll(&r.RouterGroup)
	return r
}
