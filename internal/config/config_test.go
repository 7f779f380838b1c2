package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 30*time.Second, cfg.MCP.Timeout)
	assert.Equal(t, 8, cfg.Enrichment.MaxConcurrent)
	assert.Equal(t, "gemini-2.0-flash", cfg.Advisor.Model)
	assert.Equal(t, 30*time.Minute, cfg.Advisor.PlanCacheTTL)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
}

func TestLoadSandboxAutoEnabledWithoutEndpoint(t *testing.T) {
	// No MCP_ENDPOINT in a development environment falls back to the
	// embedded aggregator instead of failing the first dashboard load.
	cfg := Load()

	assert.Empty(t, cfg.MCP.Endpoint)
	assert.True(t, cfg.MCP.Sandbox)
}

func TestLoadHonorsEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_ENV", "testing")
	t.Setenv("MCP_ENDPOINT", "https://aggregator.example/mcp/stream")
	t.Setenv("MCP_TIMEOUT", "5s")
	t.Setenv("ENRICH_MAX_CONCURRENT", "3")
	t.Setenv("RATE_LIMIT_PER_SECOND", "20")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.IsTesting())
	assert.Equal(t, "https://aggregator.example/mcp/stream", cfg.MCP.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.MCP.Timeout)
	assert.Equal(t, 3, cfg.Enrichment.MaxConcurrent)
	assert.Equal(t, 20, cfg.Security.RateLimitPerSecond)
	assert.False(t, cfg.MCP.Sandbox)
}

func TestLoadInvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("MCP_TIMEOUT", "not-a-duration")
	t.Setenv("ENRICH_MAX_CONCURRENT", "many")
	t.Setenv("MCP_SANDBOX", "definitely")

	cfg := Load()

	assert.Equal(t, 30*time.Second, cfg.MCP.Timeout)
	assert.Equal(t, 8, cfg.Enrichment.MaxConcurrent)
	assert.True(t, cfg.MCP.Sandbox) // auto-enabled, not parsed
}

func TestLoadCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOW_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg := Load()

	require.Len(t, cfg.Server.CORSAllowOrigins, 2)
	assert.Equal(t, "https://app.example.com", cfg.Server.CORSAllowOrigins[0])
	assert.Equal(t, "https://staging.example.com", cfg.Server.CORSAllowOrigins[1])
}
