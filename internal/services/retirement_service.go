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

type retirementService struct {
	client    mcp.ToolCaller
	validator *validation.Validator
	metrics   MetricsRecorderInterface
}

func NewRetirementService(client mcp.ToolCaller, validator *validation.Validator, metrics MetricsRecorderInterface) RetirementServiceInterface {
	return &retirementService{
		client:    client,
		validator: validator,
		metrics:   metrics,
	}
}

// GetEpfDetails fetches and normalizes the member's provident-fund profile.
func (s *retirementService) GetEpfDetails(ctx context.Context) (*models.EpfProfile, error) {
	start := time.Now()

	payload, err := s.client.CallTool(ctx, mcp.ToolEpfDetails)
	if err != nil {
		recordFetchFailure(s.metrics, mcp.ToolEpfDetails, err, time.Since(start))
		return nil, err
	}

	profile, err := transform.EpfDetails(payload)
	if err != nil {
		s.metrics.RecordFetch(mcp.ToolEpfDetails, "transform_error", time.Since(start))
		return nil, apperrors.Wrap(apperrors.ValidationSchemaDrift, err)
	}

	if err := s.validator.CheckRecord("epf details", profile); err != nil {
		s.metrics.RecordFetch(mcp.ToolEpfDetails, "validation_error", time.Since(start))
		return nil, err
	}

	s.metrics.RecordFetch(mcp.ToolEpfDetails, "success", time.Since(start))
	slog.Info("epf profile normalized", "uan", profile.UAN, "accounts", len(profile.Accounts))
	return profile, nil
}
