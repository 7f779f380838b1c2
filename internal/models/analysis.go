package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AllocationSlice is one category's share of a portfolio. Categories come
// from keyword matching on free-text scheme/stock names and are approximate.
type AllocationSlice struct {
	Category string          `json:"category" validate:"required"`
	Value    decimal.Decimal `json:"value"`
	Percent  decimal.Decimal `json:"percent"`
}

// PlanRecommendation is one actionable item inside a financial plan.
type PlanRecommendation struct {
	Title     string `json:"title" validate:"required"`
	Rationale string `json:"rationale" validate:"required"`
	Priority  string `json:"priority" validate:"required,oneof=HIGH MEDIUM LOW"`
}

// FinancialPlan is the LLM-produced plan. The pipeline never recomputes its
// contents; it only validates the shape before display.
type FinancialPlan struct {
	Summary         string               `json:"summary" validate:"required"`
	RiskProfile     string               `json:"riskProfile" validate:"required,oneof=CONSERVATIVE MODERATE AGGRESSIVE"`
	MonthlySavings  MoneyAmount          `json:"monthlySavings"`
	EmergencyMonths int                  `json:"emergencyMonths" validate:"gte=0,lte=36"`
	Recommendations []PlanRecommendation `json:"recommendations" validate:"required,min=1,dive"`
	GeneratedAt     time.Time            `json:"generatedAt"`
}

// StockAnalysisResult is the LLM-produced equity portfolio review.
type StockAnalysisResult struct {
	Summary              string   `json:"summary" validate:"required"`
	Strengths            []string `json:"strengths,omitempty"`
	Risks                []string `json:"risks,omitempty"`
	Suggestions          []string `json:"suggestions,omitempty"`
	ConcentrationWarning bool     `json:"concentrationWarning"`
}

// MfAnalysisOutput is the LLM-produced mutual-fund review.
type MfAnalysisOutput struct {
	Summary     string   `json:"summary" validate:"required"`
	Suggestions []string `json:"suggestions,omitempty"`
	OverlapNote string   `json:"overlapNote,omitempty"`
}
