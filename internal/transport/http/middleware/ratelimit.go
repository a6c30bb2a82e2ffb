package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	resp "aquarium-tank-api/internal/transport/http/response"
)

// RateLimit is one token bucket shared by every client.
func RateLimit(rps rate.Limit, burst int) gin.HandlerFunc {
	lim := rate.NewLimiter(rps, burst)
	return func(c *gin.Context) {
		if lim.Allow() {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusTooManyRequests, resp.Error(resp.MsgTooManyRequests))
	}
}

// bucketIdleTTL is how long a client's bucket survives without requests.
const bucketIdleTTL = 10 * time.Minute

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// ipBuckets holds one limiter per client IP and drops those idle for longer
// than ttl. Sweeps run at most once per ttl.
type ipBuckets struct {
	mu        sync.Mutex
	rps       rate.Limit
	burst     int
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
	m         map[string]*bucket
}

func newIPBuckets(rps rate.Limit, burst int, ttl time.Duration, now func() time.Time) *ipBuckets {
	return &ipBuckets{rps: rps, burst: burst, ttl: ttl, now: now, lastSweep: now(), m: make(map[string]*bucket)}
}

func (b *ipBuckets) limiter(ip string) *rate.Limiter {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := b.now()
	if now.Sub(b.lastSweep) >= b.ttl {
		for k, v := range b.m {
			if now.Sub(v.seen) >= b.ttl {
				delete(b.m, k)
			}
		}
		b.lastSweep = now
	}
	e, ok := b.m[ip]
	if !ok {
		e = &bucket{lim: rate.NewLimiter(b.rps, b.burst)}
		b.m[ip] = e
	}
	e.seen = now
	return e.lim
}

func (b *ipBuckets) len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.m)
}

// RateLimitPerIP keeps one bucket per client IP.
func RateLimitPerIP(rps rate.Limit, burst int) gin.HandlerFunc {
	return rateLimitPerIP(newIPBuckets(rps, burst, bucketIdleTTL, time.Now))
}

func rateLimitPerIP(b *ipBuckets) gin.HandlerFunc {
	return func(c *gin.Context) {
		if b.limiter(c.ClientIP()).Allow() {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusTooManyRequests, resp.Error(resp.MsgTooManyRequests))
	}
}
