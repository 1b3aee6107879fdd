package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ufund-io/ufund-v2/internal/api/middleware"
)

func setupRateLimitedRouter(cfg middleware.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RateLimit(cfg))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRateLimit(t *testing.T) {
	t.Run("rejects requests beyond burst", func(t *testing.T) {
		router := setupRateLimitedRouter(middleware.RateLimitConfig{
			RequestsPerSecond: 1,
			Burst:             2,
		})

		statuses := make([]int, 0, 3)
		for range 3 {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			router.ServeHTTP(w, req)
			statuses = append(statuses, w.Code)
		}

		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
	})

	t.Run("limits are per client", func(t *testing.T) {
		router := setupRateLimitedRouter(middleware.RateLimitConfig{
			RequestsPerSecond: 1,
			Burst:             1,
		})

		first := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(first, req)
		assert.Equal(t, http.StatusOK, first.Code)

		// Same client is throttled
		second := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(second, req)
		assert.Equal(t, http.StatusTooManyRequests, second.Code)

		// A different client still has a full bucket
		other := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		router.ServeHTTP(other, req)
		assert.Equal(t, http.StatusOK, other.Code)
	})
}
