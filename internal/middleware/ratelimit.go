package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/virpal-singh/portfolio-backend/internal/response"
)

// RateLimiter implements a fixed-window per-IP request counter. The first
// request from an IP opens a window; requests beyond the limit inside that
// window are rejected until it expires.
type RateLimiter struct {
	mu        sync.Mutex
	windows   map[string]*window
	max       int
	interval  time.Duration
	retryHint string
	skipLocal bool
}

type window struct {
	start time.Time
	count int
}

// NewRateLimiter creates a RateLimiter allowing max requests per interval
// per IP. retryHint is echoed in the rejection body (e.g. "15 minutes").
// With skipLocal set, loopback clients bypass the limiter — used in debug
// mode so local development is not throttled.
func NewRateLimiter(max int, interval time.Duration, retryHint string, skipLocal bool) *RateLimiter {
	rl := &RateLimiter{
		windows:   make(map[string]*window),
		max:       max,
		interval:  interval,
		retryHint: retryHint,
		skipLocal: skipLocal,
	}

	// Drop expired windows periodically so idle IPs do not accumulate.
	go func() {
		for range time.Tick(interval) {
			rl.cleanup()
		}
	}()

	return rl
}

// Middleware returns a Gin middleware that rate-limits requests by client IP.
// Rejections are synchronous with a fixed JSON body; nothing is queued.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		if rl.skipLocal && isLoopback(ip) {
			c.Next()
			return
		}

		rl.mu.Lock()
		w, exists := rl.windows[ip]
		now := time.Now()
		if !exists || now.Sub(w.start) >= rl.interval {
			w = &window{start: now}
			rl.windows[ip] = w
		}
		w.count++
		exceeded := w.count > rl.max
		rl.mu.Unlock()

		if exceeded {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Response{
				Success:    false,
				Message:    response.GetMessage(response.ErrRateLimitExceeded),
				RetryAfter: rl.retryHint,
			})
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, w := range rl.windows {
		if time.Since(w.start) >= rl.interval {
			delete(rl.windows, ip)
		}
	}
}

func isLoopback(ip string) bool {
	return ip == "127.0.0.1" || ip == "::1" || ip == "::ffff:127.0.0.1"
}
