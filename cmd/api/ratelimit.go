package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit limits each client IP to `limit` requests per `window` using a
// token bucket. Buckets live in process memory, so a restart resets the
// counters and traffic flows again (fail open).
func RateLimit(limit int, window time.Duration) gin.HandlerFunc {
	var (
		mu      sync.Mutex
		buckets = make(map[string]*rate.Limiter)
	)

	perSecond := rate.Limit(float64(limit) / window.Seconds())

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		limiter, ok := buckets[ip]
		if !ok {
			limiter = rate.NewLimiter(perSecond, limit)
			buckets[ip] = limiter
		}
		mu.Unlock()

		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests. Please try again later."})
			c.Abort()
			return
		}

		c.Next()
	}
}
