package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"interior-studio-backend/internal/models"
)

const rateLimiterExpiry = 5 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type ipRateLimiter struct {
	mu         sync.Mutex
	visitors   map[string]*visitor
	limit      rate.Limit
	burst      int
	lastPruned time.Time
}

func (l *ipRateLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastPruned) > rateLimiterExpiry {
		for key, v := range l.visitors {
			if now.Sub(v.lastSeen) > rateLimiterExpiry {
				delete(l.visitors, key)
			}
		}
		l.lastPruned = now
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// RateLimit throttles each client IP to ratePerSecond with the given burst.
// A non-positive rate disables limiting.
func RateLimit(ratePerSecond float64, burst int) gin.HandlerFunc {
	if ratePerSecond <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := &ipRateLimiter{
		visitors:   make(map[string]*visitor),
		limit:      rate.Limit(ratePerSecond),
		burst:      burst,
		lastPruned: time.Now(),
	}

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ErrorResponse{
				Error:  "rate_limited",
				Detail: "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
