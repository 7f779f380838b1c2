package services

import (
	"context"
	"log/slog"
	"time"

	apperrors "finsight/internal/errors"
	"finsight/internal/mcp"
	"finsight/internal/models"
	"finsight/internal/transform"
	"finsight/internal/validation"
)

type creditService struct {
	client    mcp.ToolCaller
	validator *validation.Validator
	metrics   MetricsRecorderInterface
}

func NewCreditService(client mcp.ToolCaller, validator *validation.Validator, metrics MetricsRecorderInterface) CreditServiceInterface {
	return &creditService{
		client:    client,
		validator: validator,
		metrics:   metrics,
	}
}

// GetCreditReport fetches and normalizes the bureau report.
func (s *creditService) GetCreditReport(ctx context.Context) (*models.CreditReport, error) {
	start := time.Now()

	payload, err := s.client.CallTool(ctx, mcp.ToolCreditReport)
	if err != nil {
		recordFetchFailure(s.metrics, mcp.ToolCreditReport, err, time.Since(start))
		return nil, err
	}

	report, err := transform.CreditReport(payload)
	if err != nil {
		s.metrics.RecordFetch(mcp.ToolCreditReport, "transform_error", time.Since(start))
		return nil, apperrors.Wrap(apperrors.ValidationSchemaDrift, err)
	}

	if err := s.validator.CheckRecord("credit report", report); err != nil {
		s.metrics.RecordFetch(mcp.ToolCreditReport, "validation_error", time.Since(start))
		return nil, err
	}

	s.metrics.RecordFetch(mcp.ToolCreditReport, "success", time.Since(start))
	slog.Info("credit report normalized",
		"open_accounts", len(report.OpenAccounts),
		"closed_accounts", len(report.ClosedAccounts))
	return report, nil
}
