package services

import (
	"context"
	"log/slog"
	"time"

	"finsight/internal/derive"
	"finsight/internal/enrich"
	apperrors "finsight/internal/errors"
	"finsight/internal/mcp"
	"finsight/internal/models"
	"finsight/internal/transform"
	"finsight/internal/validation"
)

type investmentService struct {
	client    mcp.ToolCaller
	profiles  enrich.ProfileAPI
	quotes    enrich.QuoteAPI
	validator *validation.Validator
	metrics   MetricsRecorderInterface
	maxFanOut int
}

func NewInvestmentService(
	client mcp.ToolCaller,
	profiles enrich.ProfileAPI,
	quotes enrich.QuoteAPI,
	validator *validation.Validator,
	metrics MetricsRecorderInterface,
	maxFanOut int,
) InvestmentServiceInterface {
	return &investmentService{
		client:    client,
		profiles:  profiles,
		quotes:    quotes,
		validator: validator,
		metrics:   metrics,
		maxFanOut: maxFanOut,
	}
}

// GetStockTransactions fetches equity trades and resolves display names per
// ISIN concurrently. A failed lookup falls back to the ISIN string; only the
// fetch, transform, and validation stages can fail the operation.
func (s *investmentService) GetStockTransactions(ctx context.Context) (*models.StockTransactionsResult, error) {
	start := time.Now()

	payload, err := s.client.CallTool(ctx, mcp.ToolStockTransactions)
	if err != nil {
		recordFetchFailure(s.metrics, mcp.ToolStockTransactions, err, time.Since(start))
		return nil, err
	}

	isins, err := transform.StockISINs(payload)
	if err != nil {
		s.metrics.RecordFetch(mcp.ToolStockTransactions, "transform_error", time.Since(start))
		return nil, apperrors.Wrap(apperrors.ValidationSchemaDrift, err)
	}

	names := s.resolveNames(ctx, isins)

	result, err := transform.StockTransactions(payload, names)
	if err != nil {
		s.metrics.RecordFetch(mcp.ToolStockTransactions, "transform_error", time.Since(start))
		return nil, apperrors.Wrap(apperrors.ValidationSchemaDrift, err)
	}

	if err := s.validator.CheckRecord("stock transactions", result); err != nil {
		s.metrics.RecordFetch(mcp.ToolStockTransactions, "validation_error", time.Since(start))
		return nil, err
	}

	s.metrics.RecordFetch(mcp.ToolStockTransactions, "success", time.Since(start))
	slog.Info("stock transactions normalized",
		"transactions", len(result.Transactions),
		"securities", len(isins))
	return result, nil
}

// GetMfTransactions fetches and normalizes mutual-fund transactions.
func (s *investmentService) GetMfTransactions(ctx context.Context) (*models.MfTransactionsResult, error) {
	start := time.Now()

	payload, err := s.client.CallTool(ctx, mcp.ToolMfTransactions)
	if err != nil {
		recordFetchFailure(s.metrics, mcp.ToolMfTransactions, err, time.Since(start))
		return nil, err
	}

	result, err := transform.MfTransactions(payload)
	if err != nil {
		s.metrics.RecordFetch(mcp.ToolMfTransactions, "transform_error", time.Since(start))
		return nil, apperrors.Wrap(apperrors.ValidationSchemaDrift, err)
	}

	if err := s.validator.CheckRecord("mf transactions", result); err != nil {
		s.metrics.RecordFetch(mcp.ToolMfTransactions, "validation_error", time.Since(start))
		return nil, err
	}

	s.metrics.RecordFetch(mcp.ToolMfTransactions, "success", time.Since(start))
	slog.Info("mf transactions normalized", "transactions", len(result.Transactions))
	return result, nil
}

// GetHoldings derives net positions from the trade history and values them
// with live quotes where available. Quote failures degrade to the invested
// amount with PriceKnown=false.
func (s *investmentService) GetHoldings(ctx context.Context) ([]models.Holding, error) {
	result, err := s.GetStockTransactions(ctx)
	if err != nil {
		return nil, err
	}

	holdings := derive.Holdings(result.Transactions)

	isins := make([]string, 0, len(holdings))
	for _, holding := range holdings {
		isins = append(isins, holding.ISIN)
	}

	quotes, failed := enrich.FanOut(ctx, isins, s.maxFanOut, s.quotes.Quote)
	for range failed {
		s.metrics.RecordEnrichmentFallback("quote")
	}
	if len(holdings) > 0 && len(quotes) == 0 {
		slog.Warn("no live prices available, valuing holdings at invested amount",
			"securities", len(holdings))
	}

	return derive.WithQuotes(holdings, quotes), nil
}

// GetTopHoldings returns the five largest holdings by current value.
func (s *investmentService) GetTopHoldings(ctx context.Context) ([]models.Holding, error) {
	holdings, err := s.GetHoldings(ctx)
	if err != nil {
		return nil, err
	}
	return derive.TopByCurrentValue(holdings, derive.TopHoldingsCount), nil
}

// GetAllocation computes the approximate category breakdown across equity
// holdings and mutual-fund investments.
func (s *investmentService) GetAllocation(ctx context.Context) ([]models.AllocationSlice, error) {
	holdings, err := s.GetHoldings(ctx)
	if err != nil {
		return nil, err
	}

	mfResult, err := s.GetMfTransactions(ctx)
	if err != nil {
		return nil, err
	}

	positions := make([]derive.NamedValue, 0, len(holdings)+len(mfResult.Transactions))
	for _, holding := range holdings {
		positions = append(positions, derive.NamedValue{
			Name:  holding.StockName,
			Value: holding.CurrentValue,
		})
	}

	invested := make(map[string]derive.NamedValue)
	order := make([]string, 0)
	for _, txn := range mfResult.Transactions {
		if txn.Type != models.MfTxnPurchase {
			continue
		}
		position, ok := invested[txn.SchemeName]
		if !ok {
			order = append(order, txn.SchemeName)
			position = derive.NamedValue{Name: txn.SchemeName}
		}
		position.Value = position.Value.Add(txn.Amount)
		invested[txn.SchemeName] = position
	}
	for _, scheme := range order {
		positions = append(positions, invested[scheme])
	}

	return derive.Allocation(positions), nil
}

// resolveNames fans out profile lookups across the batch. Failures degrade
// to the ISIN as display name and never fail the caller.
func (s *investmentService) resolveNames(ctx context.Context, isins []string) map[string]string {
	profiles, failed := enrich.FanOut(ctx, isins, s.maxFanOut, s.profiles.Profile)
	for range failed {
		s.metrics.RecordEnrichmentFallback("profile")
	}

	names := make(map[string]string, len(profiles))
	for isin, profile := range profiles {
		if profile.Name != "" {
			names[isin] = profile.Name
		}
	}
	return names
}
