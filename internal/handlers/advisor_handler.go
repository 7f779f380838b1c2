package handlers

import (
	"net/http"

	"finsight/internal/advisor"
	"finsight/internal/errors"
	"finsight/internal/services"

	"github.com/labstack/echo/v4"
)

// SessionIDHeader carries the caller's session identity for plan caching.
const SessionIDHeader = "X-Session-Id"

const defaultSessionID = "default"

// AdvisorHandler serves the AI planning and analysis endpoints.
type AdvisorHandler struct {
	planner   advisor.AdvisorInterface
	planCache services.PlanCacheInterface
}

// NewAdvisorHandler creates a new advisor handler
func NewAdvisorHandler(planner advisor.AdvisorInterface, planCache services.PlanCacheInterface) *AdvisorHandler {
	return &AdvisorHandler{
		planner:   planner,
		planCache: planCache,
	}
}

func sessionID(c echo.Context) string {
	if id := c.Request().Header.Get(SessionIDHeader); id != "" {
		return id
	}
	return defaultSessionID
}

// GeneratePlan generates a fresh financial plan grounded in live account data
// @Summary Generate financial plan
// @Tags Advisor
// @Produce json
// @Success 200 {object} SuccessResponse{data=models.FinancialPlan}
// @Failure 412 {object} ErrorResponse "CONFIG_003 - Gemini key missing"
// @Failure 502 {object} ErrorResponse "ADVISOR_xxx"
// @Router /api/v1/advisor/plan [post]
func (h *AdvisorHandler) GeneratePlan(c echo.Context) error {
	plan, err := h.planner.GeneratePlan(c.Request().Context())
	if err != nil {
		return SendPipelineError(c, err)
	}

	h.planCache.Put(sessionID(c), plan)

	return c.JSON(http.StatusOK, SuccessResponse{Data: plan})
}

// GetCachedPlan returns the last plan generated for this session, if any
// @Summary Cached financial plan
// @Tags Advisor
// @Produce json
// @Success 200 {object} SuccessResponse{data=models.FinancialPlan}
// @Failure 404 {object} ErrorResponse "ADVISOR_003 - no plan cached"
// @Router /api/v1/advisor/plan [get]
func (h *AdvisorHandler) GetCachedPlan(c echo.Context) error {
	plan, ok := h.planCache.Get(sessionID(c))
	if !ok {
		return SendError(c, errors.AdvisorNoPlanCached)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: plan})
}

// AnalyzeStocks runs the equity portfolio review
// @Summary Analyze stock portfolio
// @Tags Advisor
// @Produce json
// @Success 200 {object} SuccessResponse{data=models.StockAnalysisResult}
// @Router /api/v1/advisor/stocks [post]
func (h *AdvisorHandler) AnalyzeStocks(c echo.Context) error {
	result, err := h.planner.AnalyzeStocks(c.Request().Context())
	if err != nil {
		return SendPipelineError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: result})
}

// AnalyzeMutualFunds runs the mutual fund portfolio review
// @Summary Analyze mutual fund portfolio
// @Tags Advisor
// @Produce json
// @Success 200 {object} SuccessResponse{data=models.MfAnalysisOutput}
// @Router /api/v1/advisor/mutual-funds [post]
func (h *AdvisorHandler) AnalyzeMutualFunds(c echo.Context) error {
	result, err := h.planner.AnalyzeMutualFunds(c.Request().Context())
	if err != nil {
		return SendPipelineError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: result})
}
