package sandbox

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"finsight/internal/mcp"
)

// Server is an in-process stand-in for the MCP aggregator. It speaks the same
// JSON-RPC tools/call contract, double-encoded result text included, so the
// wire decoder exercises the exact path it takes against the real upstream.
type Server struct {
	generator *Generator
	logger    *slog.Logger
}

// NewServer wires a seeded generator behind the aggregator endpoint.
func NewServer(seed uint64, logger *slog.Logger) *Server {
	return &Server{
		generator: NewGenerator(seed),
		logger:    logger,
	}
}

// Register mounts the aggregator endpoint on the given echo instance.
func (s *Server) Register(e *echo.Echo) {
	e.POST("/mcp/stream", s.HandleToolCall)
}

// HandleToolCall answers a tools/call request with a generated payload wrapped
// in the standard envelope.
func (s *Server) HandleToolCall(c echo.Context) error {
	var req mcp.JSONRPCRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, rpcErrorResponse(0, -32700, "parse error"))
	}
	if req.Method != "tools/call" {
		return c.JSON(http.StatusOK, rpcErrorResponse(req.ID, -32601, "method not found"))
	}

	payload, err := s.payloadFor(req.Params.Name)
	if err != nil {
		return c.JSON(http.StatusOK, rpcErrorResponse(req.ID, -32602, err.Error()))
	}

	text, err := json.Marshal(payload)
	if err != nil {
		return c.JSON(http.StatusOK, rpcErrorResponse(req.ID, -32603, "internal error"))
	}

	s.logger.Debug("sandbox tool call served", "tool", req.Params.Name)

	return c.JSON(http.StatusOK, map[string]any{
		"jsonrpc": "2.0",
		"id":      req.ID,
		"result": map[string]any{
			"content": []map[string]any{
				{"type": "text", "text": string(text)},
			},
		},
	})
}

func (s *Server) payloadFor(tool string) (map[string]any, error) {
	switch tool {
	case mcp.ToolNetWorth:
		return s.generator.NetWorthPayload(), nil
	case mcp.ToolBankTransactions:
		return s.generator.BankTransactionsPayload(), nil
	case mcp.ToolStockTransactions:
		return s.generator.StockTransactionsPayload(), nil
	case mcp.ToolMfTransactions:
		return s.generator.MfTransactionsPayload(), nil
	case mcp.ToolEpfDetails:
		return s.generator.EpfDetailsPayload(), nil
	case mcp.ToolCreditReport:
		return s.generator.CreditReportPayload(), nil
	default:
		return nil, fmt.Errorf("unknown tool %q", tool)
	}
}

func rpcErrorResponse(id int, code int, message string) map[string]any {
	return map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"error":   map[string]any{"code": code, "message": message},
	}
}
