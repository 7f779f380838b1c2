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

type netWorthService struct {
	client    mcp.ToolCaller
	validator *validation.Validator
	metrics   MetricsRecorderInterface
}

func NewNetWorthService(client mcp.ToolCaller, validator *validation.Validator, metrics MetricsRecorderInterface) NetWorthServiceInterface {
	return &netWorthService{
		client:    client,
		validator: validator,
		metrics:   metrics,
	}
}

// GetNetWorth runs the full pipeline for the net-worth panel: fetch, decode,
// transform, validate. The snapshot is built fresh on every call.
func (s *netWorthService) GetNetWorth(ctx context.Context) (*models.NetWorthSnapshot, error) {
	start := time.Now()

	payload, err := s.client.CallTool(ctx, mcp.ToolNetWorth)
	if err != nil {
		recordFetchFailure(s.metrics, mcp.ToolNetWorth, err, time.Since(start))
		return nil, err
	}

	snapshot, err := transform.NetWorth(payload)
	if err != nil {
		s.metrics.RecordFetch(mcp.ToolNetWorth, "transform_error", time.Since(start))
		return nil, apperrors.Wrap(apperrors.ValidationSchemaDrift, err)
	}

	if err := s.validator.CheckRecord("net worth", snapshot); err != nil {
		s.metrics.RecordFetch(mcp.ToolNetWorth, "validation_error", time.Since(start))
		return nil, err
	}

	s.metrics.RecordFetch(mcp.ToolNetWorth, "success", time.Since(start))
	slog.Info("net worth snapshot built",
		"assets", len(snapshot.Assets),
		"liabilities", len(snapshot.Liabilities),
		"accounts", len(snapshot.Accounts))
	return snapshot, nil
}
