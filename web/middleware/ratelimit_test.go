package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiterAllowsUntilFifthFailure(t *testing.T) {
	limiter := NewLoginRateLimiter(DefaultLoginRateLimitConfig())

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("10.0.0.1")
		require.True(t, allowed, "attempt %d should be admitted", i+1)
		limiter.RecordFailure("10.0.0.1")
	}

	allowed, retryAfter := limiter.Allow("10.0.0.1")
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))

	// Other addresses are unaffected.
	allowed, _ = limiter.Allow("10.0.0.2")
	assert.True(t, allowed)
}

func TestLimiterResetOnSuccess(t *testing.T) {
	limiter := NewLoginRateLimiter(DefaultLoginRateLimitConfig())

	for i := 0; i < 5; i++ {
		limiter.RecordFailure("10.0.0.1")
	}
	allowed, _ := limiter.Allow("10.0.0.1")
	require.False(t, allowed)

	limiter.Reset("10.0.0.1")
	allowed, _ = limiter.Allow("10.0.0.1")
	assert.True(t, allowed)
}

func TestLimiterWindowSlides(t *testing.T) {
	limiter := NewLoginRateLimiter(LoginRateLimitConfig{
		MaxFailures: 2,
		Window:      50 * time.Millisecond,
	})

	limiter.RecordFailure("10.0.0.1")
	limiter.RecordFailure("10.0.0.1")
	allowed, _ := limiter.Allow("10.0.0.1")
	require.False(t, allowed)

	time.Sleep(60 * time.Millisecond)
	allowed, _ = limiter.Allow("10.0.0.1")
	assert.True(t, allowed)
}

func TestLimiterSweepDropsExpired(t *testing.T) {
	limiter := NewLoginRateLimiter(LoginRateLimitConfig{
		MaxFailures: 2,
		Window:      10 * time.Millisecond,
	})
	limiter.RecordFailure("10.0.0.1")
	time.Sleep(20 * time.Millisecond)
	limiter.Sweep()

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.Empty(t, limiter.failures)
}

func TestMiddlewareRejectsWith429(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := NewLoginRateLimiter(DefaultLoginRateLimitConfig())

	engine := gin.New()
	engine.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.9:1234"
		engine.ServeHTTP(w, req)
		return w
	}

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, do().Code)
		limiter.RecordFailure("10.0.0.9")
	}

	w := do()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), RateLimitedCode)
}
