package services

import (
	"context"
	"testing"

	apperrors "finsight/internal/errors"
	"finsight/internal/mcp"
	"finsight/internal/validation"

	"github.com/stretchr/testify/suite"
)

type NetWorthServiceTestSuite struct {
	suite.Suite
	client *fakeToolCaller
}

func TestNetWorthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NetWorthServiceTestSuite))
}

func (s *NetWorthServiceTestSuite) SetupTest() {
	s.client = &fakeToolCaller{
		payloads: map[string]string{},
		errs:     map[string]error{},
	}
}

func (s *NetWorthServiceTestSuite) service() NetWorthServiceInterface {
	return NewNetWorthService(s.client, validation.NewValidator(), NoopMetrics{})
}

func (s *NetWorthServiceTestSuite) TestGetNetWorth() {
	s.client.payloads[mcp.ToolNetWorth] = `{
		"netWorthResponse": {
			"assetValues": [
				{"netWorthAttribute": "ASSET_TYPE_MUTUAL_FUND", "value": {"currencyCode": "INR", "units": "850000"}}
			],
			"liabilityValues": [
				{"netWorthAttribute": "LIABILITY_TYPE_LOAN", "value": {"currencyCode": "INR", "units": "150000"}}
			],
			"totalNetWorthValue": {"currencyCode": "INR", "units": "700000"}
		}
	}`

	snapshot, err := s.service().GetNetWorth(context.Background())
	s.Require().NoError(err)

	total, ok := snapshot.TotalNetWorth.Decimal()
	s.Require().True(ok)
	s.Equal("700000", total.String())
	s.Len(snapshot.Assets, 1)
	s.Equal("MUTUAL_FUND", snapshot.Assets[0].Class)
}

func (s *NetWorthServiceTestSuite) TestGetNetWorth_UpstreamErrorPropagates() {
	s.client.errs[mcp.ToolNetWorth] = errUpstreamDown

	_, err := s.service().GetNetWorth(context.Background())
	s.Require().Error(err)
	s.Equal(apperrors.UpstreamUnreachable, apperrors.CodeOf(err))
}

func (s *NetWorthServiceTestSuite) TestGetNetWorth_DecodeFailureRecordsStage() {
	s.client.errs[mcp.ToolNetWorth] = apperrors.New(apperrors.DecodeInvalidRPC)
	metrics := &decodeCountingMetrics{}
	svc := NewNetWorthService(s.client, validation.NewValidator(), metrics)

	_, err := svc.GetNetWorth(context.Background())
	s.Require().Error(err)
	s.Equal(apperrors.DecodeInvalidRPC, apperrors.CodeOf(err))
	s.Equal([]string{"rpc"}, metrics.stages)
}

func (s *NetWorthServiceTestSuite) TestGetNetWorth_NonDecodeFailureLeavesStagesEmpty() {
	s.client.errs[mcp.ToolNetWorth] = errUpstreamDown
	metrics := &decodeCountingMetrics{}
	svc := NewNetWorthService(s.client, validation.NewValidator(), metrics)

	_, err := svc.GetNetWorth(context.Background())
	s.Require().Error(err)
	s.Empty(metrics.stages)
}

func (s *NetWorthServiceTestSuite) TestGetNetWorth_MalformedPayloadIsSchemaDrift() {
	s.client.payloads[mcp.ToolNetWorth] = `{"netWorthResponse": "not an object"}`

	_, err := s.service().GetNetWorth(context.Background())
	s.Require().Error(err)
	s.Equal(apperrors.ValidationSchemaDrift, apperrors.CodeOf(err))
}
