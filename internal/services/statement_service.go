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

type statementService struct {
	client    mcp.ToolCaller
	validator *validation.Validator
	metrics   MetricsRecorderInterface
}

func NewStatementService(client mcp.ToolCaller, validator *validation.Validator, metrics MetricsRecorderInterface) StatementServiceInterface {
	return &statementService{
		client:    client,
		validator: validator,
		metrics:   metrics,
	}
}

// GetBankTransactions fetches and normalizes every linked account's statement.
func (s *statementService) GetBankTransactions(ctx context.Context) (*models.BankTransactionsResult, error) {
	start := time.Now()

	payload, err := s.client.CallTool(ctx, mcp.ToolBankTransactions)
	if err != nil {
		recordFetchFailure(s.metrics, mcp.ToolBankTransactions, err, time.Since(start))
		return nil, err
	}

	result, err := transform.BankTransactions(payload)
	if err != nil {
		s.metrics.RecordFetch(mcp.ToolBankTransactions, "transform_error", time.Since(start))
		return nil, apperrors.Wrap(apperrors.ValidationSchemaDrift, err)
	}

	if err := s.validator.CheckRecord("bank transactions", result); err != nil {
		s.metrics.RecordFetch(mcp.ToolBankTransactions, "validation_error", time.Since(start))
		return nil, err
	}

	s.metrics.RecordFetch(mcp.ToolBankTransactions, "success", time.Since(start))
	slog.Info("bank statements normalized", "accounts", len(result.Statements))
	return result, nil
}
