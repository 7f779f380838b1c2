package services

import (
	"context"
	"testing"

	apperrors "finsight/internal/errors"
	"finsight/internal/mcp"
	"finsight/internal/models"
	"finsight/internal/validation"

	"github.com/stretchr/testify/suite"
)

type StatementServiceTestSuite struct {
	suite.Suite
	client *fakeToolCaller
}

func TestStatementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}

func (s *StatementServiceTestSuite) SetupTest() {
	s.client = &fakeToolCaller{
		payloads: map[string]string{},
		errs:     map[string]error{},
	}
}

func (s *StatementServiceTestSuite) service() StatementServiceInterface {
	return NewStatementService(s.client, validation.NewValidator(), NoopMetrics{})
}

func (s *StatementServiceTestSuite) TestGetBankTransactions() {
	s.client.payloads[mcp.ToolBankTransactions] = `{
		"bankTransactions": [
			{
				"bank": "ACME",
				"txns": [
					["1500.50", "NEFT SALARY", "2025-06-01T10:00:00Z", 1, "NEFT", "42000.50"],
					["200", "UPI/GROCERIES", "2025-06-02T18:30:00Z", 2]
				]
			}
		]
	}`

	result, err := s.service().GetBankTransactions(context.Background())
	s.Require().NoError(err)
	s.Require().Len(result.Statements, 1)
	s.Len(result.Statements[0].Transactions, 2)
	s.Equal("ACME-0-0", result.Statements[0].Transactions[0].ID)
	s.Equal(models.TransactionCredit, result.Statements[0].Transactions[0].Type)
}

func (s *StatementServiceTestSuite) TestGetBankTransactions_UpstreamError() {
	s.client.errs[mcp.ToolBankTransactions] = errUpstreamDown

	_, err := s.service().GetBankTransactions(context.Background())
	s.Require().Error(err)
	s.Equal(apperrors.UpstreamUnreachable, apperrors.CodeOf(err))
}

func (s *StatementServiceTestSuite) TestGetBankTransactions_MalformedRowIsSchemaDrift() {
	s.client.payloads[mcp.ToolBankTransactions] = `{
		"bankTransactions": [{"bank": "ACME", "txns": [["not-a-number"]]}]
	}`

	_, err := s.service().GetBankTransactions(context.Background())
	s.Require().Error(err)
	s.Equal(apperrors.ValidationSchemaDrift, apperrors.CodeOf(err))
}
