package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig
	MCP        MCPConfig
	Enrichment EnrichmentConfig
	Advisor    AdvisorConfig
	Security   SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

// MCPConfig points at the upstream Model Context Protocol aggregator.
type MCPConfig struct {
	Endpoint  string
	SessionID string
	Timeout   time.Duration
	// Sandbox switches the server to an embedded fake aggregator so the
	// dashboard works without upstream credentials
	Sandbox     bool
	SandboxSeed uint64
}

type EnrichmentConfig struct {
	ProfileBaseURL string
	QuoteBaseURL   string
	APIKey         string
	Timeout        time.Duration
	// MaxConcurrent bounds the per-batch lookup fan-out
	MaxConcurrent int
}

type AdvisorConfig struct {
	GeminiAPIKey string
	Model        string
	Timeout      time.Duration
	PlanCacheTTL time.Duration
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
		},
		MCP: MCPConfig{
			Endpoint:    getEnv("MCP_ENDPOINT", ""),
			SessionID:   getEnv("MCP_SESSION_ID", ""),
			Timeout:     getDurationEnv("MCP_TIMEOUT", 30*time.Second),
			Sandbox:     getBoolEnv("MCP_SANDBOX", false),
			SandboxSeed: uint64(getIntEnv("MCP_SANDBOX_SEED", 11)),
		},
		Enrichment: EnrichmentConfig{
			ProfileBaseURL: getEnv("STOCK_PROFILE_BASE_URL", "https://financialmodelingprep.com/api/v3"),
			QuoteBaseURL:   getEnv("STOCK_QUOTE_BASE_URL", "https://financialmodelingprep.com/api/v3"),
			APIKey:         getEnv("STOCK_API_KEY", ""),
			Timeout:        getDurationEnv("ENRICH_TIMEOUT", 10*time.Second),
			MaxConcurrent:  getIntEnv("ENRICH_MAX_CONCURRENT", 8),
		},
		Advisor: AdvisorConfig{
			GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
			Model:        getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			Timeout:      getDurationEnv("ADVISOR_TIMEOUT", 90*time.Second),
			PlanCacheTTL: getDurationEnv("PLAN_CACHE_TTL", 30*time.Minute),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	if config.MCP.Endpoint == "" && !config.MCP.Sandbox {
		if config.IsProduction() {
			log.Fatal("MCP_ENDPOINT must be set in production environments (or set MCP_SANDBOX=true)")
		}
		log.Println("INFO: MCP_ENDPOINT not set, enabling embedded sandbox aggregator")
		config.MCP.Sandbox = true
	}

	return config
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		} else {
			log.Println("INFO: CORS_ALLOW_ORIGINS not set, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
