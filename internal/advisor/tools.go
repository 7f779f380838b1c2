package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"finsight/internal/mcp"
	"finsight/internal/services"

	"google.golang.org/genai"
)

// Toolset exposes the domain fetch operations as declared function tools the
// model may invoke zero or more times while reasoning. Each tool returns the
// already-normalized, validated record; the model never sees raw envelopes.
type Toolset struct {
	netWorth    services.NetWorthServiceInterface
	statements  services.StatementServiceInterface
	investments services.InvestmentServiceInterface
	retirement  services.RetirementServiceInterface
	credit      services.CreditServiceInterface
}

func NewToolset(
	netWorth services.NetWorthServiceInterface,
	statements services.StatementServiceInterface,
	investments services.InvestmentServiceInterface,
	retirement services.RetirementServiceInterface,
	credit services.CreditServiceInterface,
) *Toolset {
	return &Toolset{
		netWorth:    netWorth,
		statements:  statements,
		investments: investments,
		retirement:  retirement,
		credit:      credit,
	}
}

// Declarations lists every tool offered to the model.
func (t *Toolset) Declarations() []*genai.FunctionDeclaration {
	emptyParams := &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}}
	describe := func(name, description string) *genai.FunctionDeclaration {
		return &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Parameters:  emptyParams,
		}
	}
	return []*genai.FunctionDeclaration{
		describe(mcp.ToolNetWorth, "Fetch the user's net worth: total, asset and liability classes, and per-account holdings."),
		describe(mcp.ToolBankTransactions, "Fetch the user's bank transactions grouped per account."),
		describe(mcp.ToolStockTransactions, "Fetch the user's equity trade history with derived holdings context."),
		describe(mcp.ToolMfTransactions, "Fetch the user's mutual-fund transaction history."),
		describe(mcp.ToolEpfDetails, "Fetch the user's EPF retirement balances per employer."),
		describe(mcp.ToolCreditReport, "Fetch the user's credit report: scores and open/closed accounts."),
	}
}

// Call dispatches one model-issued function call to the matching service.
// Errors are returned inside the FunctionResponse so the model can recover;
// they never abort the generation.
func (t *Toolset) Call(ctx context.Context, fc *genai.FunctionCall) *genai.FunctionResponse {
	response := &genai.FunctionResponse{ID: fc.ID, Name: fc.Name}

	var (
		result any
		err    error
	)
	switch fc.Name {
	case mcp.ToolNetWorth:
		result, err = t.netWorth.GetNetWorth(ctx)
	case mcp.ToolBankTransactions:
		result, err = t.statements.GetBankTransactions(ctx)
	case mcp.ToolStockTransactions:
		result, err = t.investments.GetStockTransactions(ctx)
	case mcp.ToolMfTransactions:
		result, err = t.investments.GetMfTransactions(ctx)
	case mcp.ToolEpfDetails:
		result, err = t.retirement.GetEpfDetails(ctx)
	case mcp.ToolCreditReport:
		result, err = t.credit.GetCreditReport(ctx)
	default:
		err = fmt.Errorf("unknown tool %q", fc.Name)
	}

	if err != nil {
		slog.Warn("advisor tool call failed", "tool", fc.Name, "error", err)
		response.Response = map[string]any{"error": err.Error()}
		return response
	}

	output, err := toToolOutput(result)
	if err != nil {
		response.Response = map[string]any{"error": err.Error()}
		return response
	}
	response.Response = map[string]any{"output": output}
	return response
}

// toToolOutput round-trips a domain record through JSON into the generic map
// shape the function-response part requires.
func toToolOutput(record any) (map[string]any, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("marshal tool output: %w", err)
	}
	var output map[string]any
	if err := json.Unmarshal(raw, &output); err != nil {
		// array-rooted records get wrapped
		var list []any
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("unmarshal tool output: %w", err)
		}
		return map[string]any{"items": list}, nil
	}
	return output, nil
}
