package middleware

import (
	"net"
	"strings"
	"sync"
	"time"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	visitorTTL      = 3 * time.Minute
	cleanupInterval = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitorLimiter keeps one token bucket per client IP
type visitorLimiter struct {
	mu          sync.Mutex
	visitors    map[string]*visitor
	perSecond   rate.Limit
	burst       int
	lastCleanup time.Time
	now         func() time.Time
}

func newVisitorLimiter(perSecond, burst int) *visitorLimiter {
	return &visitorLimiter{
		visitors:    make(map[string]*visitor),
		perSecond:   rate.Limit(perSecond),
		burst:       burst,
		lastCleanup: time.Now(),
		now:         time.Now,
	}
}

// RateLimiterWithConfig limits each client IP to perSecond requests with the given burst
func RateLimiterWithConfig(perSecond, burst int) echo.MiddlewareFunc {
	return newVisitorLimiter(perSecond, burst).middleware()
}

func (l *visitorLimiter) middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !l.allow(getIP(c)) {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}

			return next(c)
		}
	}
}

func (l *visitorLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastCleanup) > cleanupInterval {
		for key, v := range l.visitors {
			if now.Sub(v.lastSeen) > visitorTTL {
				delete(l.visitors, key)
			}
		}
		l.lastCleanup = now
	}

	v, exists := l.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(l.perSecond, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

func getIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); net.ParseIP(ip) != nil {
			return ip
		}
	}

	if xri := strings.TrimSpace(c.Request().Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	return c.RealIP()
}
