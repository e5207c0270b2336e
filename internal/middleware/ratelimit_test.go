package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dailyforge/journal_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newThrottledRouter(interval time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RateLimit(middleware.NewSlidingWindowLimiter(interval)))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func performPing(r *gin.Engine) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:12345"
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestRateLimit_SecondRequestWithinWindowRejected(t *testing.T) {
	r := newThrottledRouter(time.Minute)

	first := performPing(r)
	require.Equal(t, http.StatusOK, first.Code)

	second := performPing(r)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), "Too many requests")
}

func TestRateLimit_AllowsAfterWindowElapses(t *testing.T) {
	r := newThrottledRouter(100 * time.Millisecond)

	require.Equal(t, http.StatusOK, performPing(r).Code)
	require.Equal(t, http.StatusTooManyRequests, performPing(r).Code)

	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, http.StatusOK, performPing(r).Code)
}

func TestRateLimit_TracksClientsIndependently(t *testing.T) {
	r := newThrottledRouter(time.Minute)

	require.Equal(t, http.StatusOK, performPing(r).Code)

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:54321"
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
