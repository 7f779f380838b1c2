package middleware

import (
	"net"
	"sync"
	"time"

	"finsight/internal/errors"
	"finsight/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// Per-client token buckets. Idle clients are evicted so the map stays bounded
// even when the dashboard sits behind a proxy that spreads source addresses.
type limiterStore struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	rps     rate.Limit
	burst   int
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const clientIdleTTL = 3 * time.Minute

func newLimiterStore(rps, burst int) *limiterStore {
	return &limiterStore{
		clients: make(map[string]*clientLimiter),
		rps:     rate.Limit(rps),
		burst:   burst,
	}
}

func (s *limiterStore) allow(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.clients[ip]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(s.rps, s.burst)}
		s.clients[ip] = client
	}
	client.lastSeen = time.Now()
	return client.limiter.Allow()
}

func (s *limiterStore) evictIdle() {
	for {
		time.Sleep(time.Minute)

		s.mu.Lock()
		for ip, client := range s.clients {
			if time.Since(client.lastSeen) > clientIdleTTL {
				delete(s.clients, ip)
			}
		}
		s.mu.Unlock()
	}
}

// RateLimiterWithConfig creates a per-IP rate limiting middleware. Rejected
// requests get the standard SYSTEM_003 response.
func RateLimiterWithConfig(rps, burst int) echo.MiddlewareFunc {
	store := newLimiterStore(rps, burst)
	go store.evictIdle()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !store.allow(clientIP(c)) {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}
			return next(c)
		}
	}
}

// RateLimiter applies the default limits: 5 req/sec with a burst of 10.
func RateLimiter() echo.MiddlewareFunc {
	return RateLimiterWithConfig(5, 10)
}

// clientIP keys the limiter by the caller's address. Proxy headers are
// resolved through echo's RealIP, so trust in X-Forwarded-For is configured
// once on the echo instance via its IPExtractor rather than read here. A
// header value that does not parse as an IP falls back to the socket peer,
// so a forged header cannot mint a fresh bucket per request.
func clientIP(c echo.Context) string {
	if ip := c.RealIP(); net.ParseIP(ip) != nil {
		return ip
	}
	host, _, err := net.SplitHostPort(c.Request().RemoteAddr)
	if err != nil {
		return c.Request().RemoteAddr
	}
	return host
}
