package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func newRateLimitedRouter(cfg RateLimiterConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewRateLimiter(cfg).RateLimit())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func doPing(r *gin.Engine, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitExhaustsBurst(t *testing.T) {
	r := newRateLimitedRouter(RateLimiterConfig{Rate: rate.Limit(0.001), Burst: 2})

	assert.Equal(t, http.StatusOK, doPing(r, "10.0.0.1:50000"))
	assert.Equal(t, http.StatusOK, doPing(r, "10.0.0.1:50000"))
	assert.Equal(t, http.StatusTooManyRequests, doPing(r, "10.0.0.1:50000"))
}

func TestRateLimitIsPerClient(t *testing.T) {
	r := newRateLimitedRouter(RateLimiterConfig{Rate: rate.Limit(0.001), Burst: 1})

	assert.Equal(t, http.StatusOK, doPing(r, "10.0.0.1:50000"))
	assert.Equal(t, http.StatusTooManyRequests, doPing(r, "10.0.0.1:50000"))

	// A different workstation still has its own budget.
	assert.Equal(t, http.StatusOK, doPing(r, "10.0.0.2:50000"))
}
