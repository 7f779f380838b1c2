package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"finsight/internal/config"
	apperrors "finsight/internal/errors"
	"finsight/internal/models"
	"finsight/internal/services"
	"finsight/internal/validation"

	"google.golang.org/genai"
)

// maxToolRounds bounds the tool-call loop so a confused model cannot spin
// forever against the aggregator.
const maxToolRounds = 12

// AdvisorInterface is the LLM advisory surface.
type AdvisorInterface interface {
	GeneratePlan(ctx context.Context) (*models.FinancialPlan, error)
	AnalyzeStocks(ctx context.Context) (*models.StockAnalysisResult, error)
	AnalyzeMutualFunds(ctx context.Context) (*models.MfAnalysisOutput, error)
}

// Planner drives Gemini with the domain toolset and validates every
// structured answer before it reaches a caller.
type Planner struct {
	cfg       config.AdvisorConfig
	client    *genai.Client
	toolset   *Toolset
	validator *validation.Validator
	metrics   services.MetricsRecorderInterface
}

// NewPlanner builds the advisor. A missing API key is reported lazily, per
// operation, so the rest of the dashboard keeps working without one.
func NewPlanner(
	ctx context.Context,
	cfg config.AdvisorConfig,
	toolset *Toolset,
	validator *validation.Validator,
	metrics services.MetricsRecorderInterface,
) (*Planner, error) {
	planner := &Planner{
		cfg:       cfg,
		toolset:   toolset,
		validator: validator,
		metrics:   metrics,
	}
	if cfg.GeminiAPIKey == "" {
		return planner, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	planner.client = client
	return planner, nil
}

func (p *Planner) GeneratePlan(ctx context.Context) (*models.FinancialPlan, error) {
	var plan models.FinancialPlan
	if err := p.generate(ctx, "plan", planPrompt, &plan); err != nil {
		return nil, err
	}
	plan.GeneratedAt = time.Now().UTC()
	return &plan, nil
}

func (p *Planner) AnalyzeStocks(ctx context.Context) (*models.StockAnalysisResult, error) {
	var analysis models.StockAnalysisResult
	if err := p.generate(ctx, "stock_analysis", stockAnalysisPrompt, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (p *Planner) AnalyzeMutualFunds(ctx context.Context) (*models.MfAnalysisOutput, error) {
	var analysis models.MfAnalysisOutput
	if err := p.generate(ctx, "mf_analysis", mfAnalysisPrompt, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// generate runs one chat: prompt, tool-call rounds, then parse and validate
// the structured answer into out.
func (p *Planner) generate(ctx context.Context, operation, prompt string, out any) error {
	if p.client == nil {
		return apperrors.New(apperrors.ConfigMissingGeminiKey)
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	chat, err := p.client.Chats.Create(ctx, p.cfg.Model, &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
		Tools: []*genai.Tool{
			{FunctionDeclarations: p.toolset.Declarations()},
		},
	}, nil)
	if err != nil {
		p.metrics.RecordAdvisorGeneration(operation, "error", time.Since(start))
		return apperrors.Wrap(apperrors.AdvisorGenerationFailed, err)
	}

	text, err := p.converse(ctx, chat, &genai.Part{Text: prompt})
	if err != nil {
		p.metrics.RecordAdvisorGeneration(operation, "error", time.Since(start))
		return apperrors.Wrap(apperrors.AdvisorGenerationFailed, err)
	}

	if err := json.Unmarshal([]byte(stripFences(text)), out); err != nil {
		p.metrics.RecordAdvisorGeneration(operation, "invalid_output", time.Since(start))
		return apperrors.Wrap(apperrors.AdvisorInvalidOutput, err)
	}
	if err := p.validator.GetValidate().Struct(out); err != nil {
		p.metrics.RecordAdvisorGeneration(operation, "invalid_output", time.Since(start))
		return apperrors.Wrap(apperrors.AdvisorInvalidOutput, err)
	}

	p.metrics.RecordAdvisorGeneration(operation, "success", time.Since(start))
	slog.Info("advisor generation complete", "operation", operation, "duration_ms", time.Since(start).Milliseconds())
	return nil
}

// converse sends the prompt and keeps answering function calls until the
// model produces a text answer.
func (p *Planner) converse(ctx context.Context, chat *genai.Chat, part *genai.Part) (string, error) {
	for round := 0; round < maxToolRounds; round++ {
		resp, err := chat.Send(ctx, part)
		if err != nil {
			return "", err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			return "", fmt.Errorf("model returned no content")
		}

		first := resp.Candidates[0].Content.Parts[0]
		if first.FunctionCall != nil {
			toolResponse := p.toolset.Call(ctx, first.FunctionCall)
			part = &genai.Part{FunctionResponse: toolResponse}
			continue
		}
		return first.Text, nil
	}
	return "", fmt.Errorf("model exceeded %d tool-call rounds", maxToolRounds)
}

// stripFences drops markdown code fences models sometimes wrap JSON in
// despite instructions.
func stripFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
