package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"finsight/internal/advisor"
	"finsight/internal/config"
	"finsight/internal/enrich"
	"finsight/internal/handlers"
	"finsight/internal/mcp"
	"finsight/internal/middleware"
	"finsight/internal/sandbox"
	"finsight/internal/services"
	"finsight/internal/validation"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()
	setupLogger(cfg)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.Tracing())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, handlers.SessionIDHeader, middleware.TraceIDHeader},
	}))

	aggregatorMode := "live"
	if cfg.MCP.Sandbox {
		aggregatorMode = "sandbox"
		sandboxServer := sandbox.NewServer(cfg.MCP.SandboxSeed, slog.Default())
		sandboxServer.Register(e)
		cfg.MCP.Endpoint = fmt.Sprintf("http://127.0.0.1:%s/mcp/stream", cfg.Server.Port)
		slog.Info("Embedded sandbox aggregator enabled", "seed", cfg.MCP.SandboxSeed)
	}

	validator := validation.GetValidator()
	metrics := services.NewPipelineMetrics()
	mcpClient := mcp.NewClient(cfg.MCP)

	profiles := enrich.NewProfileClient(cfg.Enrichment)
	quotes := enrich.NewGuardedQuoteClient(
		enrich.NewQuoteClient(cfg.Enrichment),
		enrich.NewCircuitBreaker(enrich.DefaultCircuitBreakerConfig()),
	)

	netWorthService := services.NewNetWorthService(mcpClient, validator, metrics)
	statementService := services.NewStatementService(mcpClient, validator, metrics)
	investmentService := services.NewInvestmentService(
		mcpClient, profiles, quotes, validator, metrics, cfg.Enrichment.MaxConcurrent)
	retirementService := services.NewRetirementService(mcpClient, validator, metrics)
	creditService := services.NewCreditService(mcpClient, validator, metrics)

	toolset := advisor.NewToolset(
		netWorthService, statementService, investmentService, retirementService, creditService)
	planner, err := advisor.NewPlanner(context.Background(), cfg.Advisor, toolset, validator, metrics)
	if err != nil {
		slog.Error("Failed to initialize advisor", "error", err)
		os.Exit(1)
	}
	planCache := services.NewPlanCache(cfg.Advisor.PlanCacheTTL)

	dashboardHandler := handlers.NewDashboardHandler(
		netWorthService, statementService, investmentService, retirementService, creditService)
	advisorHandler := handlers.NewAdvisorHandler(planner, planCache)
	healthHandler := handlers.NewHealthCheckHandler(aggregatorMode, cfg.Advisor.GeminiAPIKey != "")

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.GET("/networth", dashboardHandler.GetNetWorth)
	api.GET("/transactions/bank", dashboardHandler.GetBankTransactions)
	api.GET("/investments/stocks", dashboardHandler.GetStockTransactions)
	api.GET("/investments/mutual-funds", dashboardHandler.GetMfTransactions)
	api.GET("/investments/holdings", dashboardHandler.GetHoldings)
	api.GET("/investments/holdings/top", dashboardHandler.GetTopHoldings)
	api.GET("/investments/allocation", dashboardHandler.GetAllocation)
	api.GET("/epf", dashboardHandler.GetEpfDetails)
	api.GET("/credit-report", dashboardHandler.GetCreditReport)
	api.POST("/advisor/plan", advisorHandler.GeneratePlan)
	api.GET("/advisor/plan", advisorHandler.GetCachedPlan)
	api.POST("/advisor/stocks", advisorHandler.AnalyzeStocks)
	api.POST("/advisor/mutual-funds", advisorHandler.AnalyzeMutualFunds)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		slog.Info("Starting server",
			"addr", addr,
			"environment", cfg.Server.Environment,
			"aggregator", aggregatorMode,
		)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger(cfg *config.Config) {
	level := slog.LevelDebug
	if cfg.IsProduction() {
		level = slog.LevelInfo
	}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
