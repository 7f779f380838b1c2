package handlers

import (
	"net/http"

	"finsight/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the aggregated finance panels: net worth, bank
// statements, investments, EPF, and the credit report.
type DashboardHandler struct {
	netWorthService   services.NetWorthServiceInterface
	statementService  services.StatementServiceInterface
	investmentService services.InvestmentServiceInterface
	retirementService services.RetirementServiceInterface
	creditService     services.CreditServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	netWorthService services.NetWorthServiceInterface,
	statementService services.StatementServiceInterface,
	investmentService services.InvestmentServiceInterface,
	retirementService services.RetirementServiceInterface,
	creditService services.CreditServiceInterface,
) *DashboardHandler {
	return &DashboardHandler{
		netWorthService:   netWorthService,
		statementService:  statementService,
		investmentService: investmentService,
		retirementService: retirementService,
		creditService:     creditService,
	}
}

// GetNetWorth returns the net worth snapshot with per-class breakdown
// @Summary Net worth snapshot
// @Tags Dashboard
// @Produce json
// @Success 200 {object} SuccessResponse{data=models.NetWorthSnapshot}
// @Failure 502 {object} ErrorResponse "UPSTREAM_xxx / DECODE_xxx"
// @Router /api/v1/networth [get]
func (h *DashboardHandler) GetNetWorth(c echo.Context) error {
	snapshot, err := h.netWorthService.GetNetWorth(c.Request().Context())
	if err != nil {
		return SendPipelineError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: snapshot})
}

// GetBankTransactions returns normalized bank transactions across accounts
// @Summary Bank transactions
// @Tags Dashboard
// @Produce json
// @Success 200 {object} SuccessResponse{data=models.BankTransactionsResult}
// @Router /api/v1/transactions/bank [get]
func (h *DashboardHandler) GetBankTransactions(c echo.Context) error {
	result, err := h.statementService.GetBankTransactions(c.Request().Context())
	if err != nil {
		return SendPipelineError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: result})
}

// GetStockTransactions returns the equity trade history, newest first
// @Summary Stock transactions
// @Tags Investments
// @Produce json
// @Success 200 {object} SuccessResponse{data=models.StockTransactionsResult}
// @Router /api/v1/investments/stocks [get]
func (h *DashboardHandler) GetStockTransactions(c echo.Context) error {
	result, err := h.investmentService.GetStockTransactions(c.Request().Context())
	if err != nil {
		return SendPipelineError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: result})
}

// GetMfTransactions returns the mutual fund order history
// @Summary Mutual fund transactions
// @Tags Investments
// @Produce json
// @Success 200 {object} SuccessResponse{data=models.MfTransactionsResult}
// @Router /api/v1/investments/mutual-funds [get]
func (h *DashboardHandler) GetMfTransactions(c echo.Context) error {
	result, err := h.investmentService.GetMfTransactions(c.Request().Context())
	if err != nil {
		return SendPipelineError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: result})
}

// GetHoldings returns derived equity holdings with live valuations where
// quotes are available
// @Summary Current holdings
// @Tags Investments
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.Holding}
// @Failure 412 {object} ErrorResponse "CONFIG_002 - stock API key missing"
// @Router /api/v1/investments/holdings [get]
func (h *DashboardHandler) GetHoldings(c echo.Context) error {
	holdings, err := h.investmentService.GetHoldings(c.Request().Context())
	if err != nil {
		return SendPipelineError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: holdings})
}

// GetTopHoldings returns the largest holdings by current value
// @Summary Top holdings
// @Tags Investments
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.Holding}
// @Router /api/v1/investments/holdings/top [get]
func (h *DashboardHandler) GetTopHoldings(c echo.Context) error {
	holdings, err := h.investmentService.GetTopHoldings(c.Request().Context())
	if err != nil {
		return SendPipelineError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: holdings})
}

// GetAllocation returns the portfolio allocation by category
// @Summary Portfolio allocation
// @Tags Investments
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.AllocationSlice}
// @Router /api/v1/investments/allocation [get]
func (h *DashboardHandler) GetAllocation(c echo.Context) error {
	allocation, err := h.investmentService.GetAllocation(c.Request().Context())
	if err != nil {
		return SendPipelineError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: allocation})
}

// GetEpfDetails returns the provident fund balances per establishment
// @Summary EPF details
// @Tags Dashboard
// @Produce json
// @Success 200 {object} SuccessResponse{data=models.EpfProfile}
// @Router /api/v1/epf [get]
func (h *DashboardHandler) GetEpfDetails(c echo.Context) error {
	profile, err := h.retirementService.GetEpfDetails(c.Request().Context())
	if err != nil {
		return SendPipelineError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: profile})
}

// GetCreditReport returns the bureau score and tradeline summary
// @Summary Credit report
// @Tags Dashboard
// @Produce json
// @Success 200 {object} SuccessResponse{data=models.CreditReport}
// @Router /api/v1/credit-report [get]
func (h *DashboardHandler) GetCreditReport(c echo.Context) error {
	report, err := h.creditService.GetCreditReport(c.Request().Context())
	if err != nil {
		return SendPipelineError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: report})
}
