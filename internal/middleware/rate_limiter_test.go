package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func hit(e *echo.Echo, handler echo.HandlerFunc, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/networth", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := handler(c); err != nil {
		panic(err)
	}
	return rec
}

func TestRateLimiterAllowsBurstThenRejects(t *testing.T) {
	e := echo.New()
	handler := RateLimiterWithConfig(2, 4)(okHandler)

	for i := 0; i < 4; i++ {
		rec := hit(e, handler, "192.168.1.2:12345")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d within burst", i)
	}

	rec := hit(e, handler, "192.168.1.2:12345")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_003")
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	e := echo.New()
	handler := RateLimiterWithConfig(1, 1)(okHandler)

	// Exhaust one client's bucket.
	hit(e, handler, "10.0.0.1:1000")
	rec := hit(e, handler, "10.0.0.1:1000")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// A different client is unaffected.
	rec = hit(e, handler, "10.0.0.2:1000")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiterDefaultBurst(t *testing.T) {
	e := echo.New()
	handler := RateLimiter()(okHandler)

	for i := 0; i < 10; i++ {
		rec := hit(e, handler, "10.0.0.3:1000")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d within default burst", i)
	}

	rec := hit(e, handler, "10.0.0.3:1000")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "forwarded address wins",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.9", "X-Real-IP": "198.51.100.7"},
			remoteAddr: "10.0.0.1:1000",
			expected:   "203.0.113.9",
		},
		{
			name:       "first hop of a forwarded chain",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.9, 172.16.0.2"},
			remoteAddr: "10.0.0.1:1000",
			expected:   "203.0.113.9",
		},
		{
			name:       "X-Real-IP fallback",
			headers:    map[string]string{"X-Real-IP": "198.51.100.7"},
			remoteAddr: "10.0.0.1:1000",
			expected:   "198.51.100.7",
		},
		{
			name:       "implausible forwarded value falls back to the peer",
			headers:    map[string]string{"X-Forwarded-For": "not-an-address"},
			remoteAddr: "10.0.0.1:1000",
			expected:   "10.0.0.1",
		},
		{
			name:       "remote address last",
			remoteAddr: "10.0.0.1:1000",
			expected:   "10.0.0.1",
		},
	}

	e := echo.New()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			c := e.NewContext(req, httptest.NewRecorder())
			assert.Equal(t, tc.expected, clientIP(c))
		})
	}
}
