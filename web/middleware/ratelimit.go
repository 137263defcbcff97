package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/evolvo-uz/evolvo/logger"
	"github.com/evolvo-uz/evolvo/web/entity"

	"github.com/gin-gonic/gin"
)

// RateLimitedCode is the machine-readable reason returned on 429.
const RateLimitedCode = "RATE_LIMITED"

// LoginRateLimitConfig configures the login rate limiter.
type LoginRateLimitConfig struct {
	MaxFailures int
	Window      time.Duration
	KeyFunc     func(c *gin.Context) string
}

// DefaultLoginRateLimitConfig allows 5 failed attempts per client address
// within a trailing 15 minute window.
func DefaultLoginRateLimitConfig() LoginRateLimitConfig {
	return LoginRateLimitConfig{
		MaxFailures: 5,
		Window:      15 * time.Minute,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// LoginRateLimiter bounds failed login attempts per client address with a
// sliding window. Successful logins do not count; only failures do.
// Constructed once and injected into route registration so a distributed
// implementation can replace it without touching handlers.
type LoginRateLimiter struct {
	config LoginRateLimitConfig

	mu       sync.Mutex
	failures map[string][]time.Time
}

func NewLoginRateLimiter(config LoginRateLimitConfig) *LoginRateLimiter {
	if config.MaxFailures <= 0 {
		config.MaxFailures = 5
	}
	if config.Window <= 0 {
		config.Window = 15 * time.Minute
	}
	if config.KeyFunc == nil {
		config.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	return &LoginRateLimiter{
		config:   config,
		failures: make(map[string][]time.Time),
	}
}

// prune drops entries older than the window. Caller holds the lock.
func (l *LoginRateLimiter) prune(key string, now time.Time) []time.Time {
	kept := l.failures[key][:0]
	for _, t := range l.failures[key] {
		if now.Sub(t) < l.config.Window {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		delete(l.failures, key)
		return nil
	}
	l.failures[key] = kept
	return kept
}

// Allow reports whether the key is under the failure limit, and when it
// is not, how long until the oldest failure leaves the window.
func (l *LoginRateLimiter) Allow(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	recent := l.prune(key, now)
	if len(recent) < l.config.MaxFailures {
		return true, 0
	}
	retryAfter := l.config.Window - now.Sub(recent[0])
	if retryAfter < time.Second {
		retryAfter = time.Second
	}
	return false, retryAfter
}

// RecordFailure counts one failed attempt against the key. The check and
// increment share one lock so parallel requests cannot undercount.
func (l *LoginRateLimiter) RecordFailure(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.prune(key, now)
	l.failures[key] = append(l.failures[key], now)
}

// Reset clears the window for a key after a successful login.
func (l *LoginRateLimiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.failures, key)
}

// Sweep drops expired windows; wired to a periodic job.
func (l *LoginRateLimiter) Sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	for key := range l.failures {
		l.prune(key, now)
	}
}

// Key resolves the client key for a request.
func (l *LoginRateLimiter) Key(c *gin.Context) string {
	return l.config.KeyFunc(c)
}

// Middleware rejects over-limit clients with 429 before the login handler
// runs. The response names no accounts, only the retry delay.
func (l *LoginRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := l.Key(c)
		allowed, retryAfter := l.Allow(key)
		if !allowed {
			seconds := int(retryAfter.Round(time.Second).Seconds())
			logger.Warningf("login rate limit exceeded for %s (user agent %q)", key, c.Request.UserAgent())
			c.Header("Retry-After", strconv.Itoa(seconds))
			c.JSON(http.StatusTooManyRequests, entity.RateLimited{
				Success:    false,
				Code:       RateLimitedCode,
				Msg:        i18n(c, "auth.rateLimited"),
				RetryAfter: seconds,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
