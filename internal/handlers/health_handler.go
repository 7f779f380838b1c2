package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	aggregatorMode string
	advisorReady   bool
}

// NewHealthCheckHandler creates a new health check handler. aggregatorMode is
// "live" or "sandbox"; advisorReady reports whether a Gemini key is configured.
func NewHealthCheckHandler(aggregatorMode string, advisorReady bool) *HealthCheckHandler {
	return &HealthCheckHandler{
		aggregatorMode: aggregatorMode,
		advisorReady:   advisorReady,
	}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string} "Service is healthy"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":     "healthy",
		"time":       time.Now().UTC().Format(time.RFC3339),
		"aggregator": h.aggregatorMode,
		"advisor":    h.advisorReady,
	})
}
