package services

import (
	"context"
	"time"

	"finsight/internal/models"
)

// NetWorthServiceInterface serves the dashboard's net-worth panel.
type NetWorthServiceInterface interface {
	GetNetWorth(ctx context.Context) (*models.NetWorthSnapshot, error)
}

// StatementServiceInterface serves normalized bank statements.
type StatementServiceInterface interface {
	GetBankTransactions(ctx context.Context) (*models.BankTransactionsResult, error)
}

// InvestmentServiceInterface serves equity and mutual-fund views.
type InvestmentServiceInterface interface {
	GetStockTransactions(ctx context.Context) (*models.StockTransactionsResult, error)
	GetMfTransactions(ctx context.Context) (*models.MfTransactionsResult, error)
	GetHoldings(ctx context.Context) ([]models.Holding, error)
	GetTopHoldings(ctx context.Context) ([]models.Holding, error)
	GetAllocation(ctx context.Context) ([]models.AllocationSlice, error)
}

// RetirementServiceInterface serves the EPF panel.
type RetirementServiceInterface interface {
	GetEpfDetails(ctx context.Context) (*models.EpfProfile, error)
}

// CreditServiceInterface serves the credit-report panel.
type CreditServiceInterface interface {
	GetCreditReport(ctx context.Context) (*models.CreditReport, error)
}

// PlanCacheInterface holds the last generated plan per session, the only
// state kept between requests. It backs redisplay of a summary and is not
// authoritative.
type PlanCacheInterface interface {
	Put(sessionID string, plan *models.FinancialPlan)
	Get(sessionID string) (*models.FinancialPlan, bool)
}

// MetricsRecorderInterface records pipeline observability events.
type MetricsRecorderInterface interface {
	RecordFetch(tool, status string, duration time.Duration)
	RecordDecodeFailure(stage string)
	RecordEnrichmentFallback(kind string)
	RecordAdvisorGeneration(operation, status string, duration time.Duration)
}
