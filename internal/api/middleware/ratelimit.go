package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apierrors "github.com/ufund-io/ufund-v2/internal/api/shared/errors"
)

// RateLimitConfig holds per-client request rate limiting configuration
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate allowed per client
	RequestsPerSecond float64
	// Burst is the number of requests a client may send at once
	Burst int
}

// clientLimiter pairs a token bucket with its last use, for pruning
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// pruneAfter is how long an idle client's bucket is kept around
const pruneAfter = 3 * time.Minute

type rateLimiter struct {
	config  RateLimitConfig
	mu      sync.Mutex
	clients map[string]*clientLimiter
}

func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cl, ok := rl.clients[key]
	if !ok {
		// Prune idle clients before growing the map
		for k, c := range rl.clients {
			if now.Sub(c.lastSeen) > pruneAfter {
				delete(rl.clients, k)
			}
		}
		cl = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(rl.config.RequestsPerSecond), rl.config.Burst)}
		rl.clients[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter.Allow()
}

// RateLimit returns a middleware limiting each client to the configured
// sustained request rate. The limiter runs before authentication, so clients
// are keyed by IP.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 20
	}
	if cfg.Burst < 1 {
		cfg.Burst = int(cfg.RequestsPerSecond) * 2
	}

	rl := &rateLimiter{
		config:  cfg,
		clients: make(map[string]*clientLimiter),
	}

	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			apiErr := apierrors.NewRateLimitedError("Too many requests")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apiErr)
			return
		}

		c.Next()
	}
}
