package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// idle limiters are dropped after this long
const limiterExpiry = time.Hour

// SubmitRateLimit limits assessment submissions per client IP. It protects the
// service itself; the upstream API still applies its own limits per key.
// perMinute <= 0 disables limiting.
func SubmitRateLimit(perMinute, burst int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst <= 0 {
		burst = 1
	}
	every := time.Minute / time.Duration(perMinute)
	return limit.NewRateLimiter(func(c *gin.Context) string {
		return c.ClientIP()
	}, func(c *gin.Context) (*rate.Limiter, time.Duration) {
		return rate.NewLimiter(rate.Every(every), burst), limiterExpiry
	}, func(c *gin.Context) {
		Logger(c).Warn().Str("client_ip", c.ClientIP()).Msg("SubmitRateLimit(): submission rejected")
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many submissions, please wait a moment and try again"})
	})
}
