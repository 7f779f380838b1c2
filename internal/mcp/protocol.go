package mcp

import "encoding/json"

const jsonRPCVersion = "2.0"

// Tool names exposed by the upstream aggregator.
const (
	ToolNetWorth          = "fetch_net_worth"
	ToolBankTransactions  = "fetch_bank_transactions"
	ToolStockTransactions = "fetch_stock_transactions"
	ToolMfTransactions    = "fetch_mf_transactions"
	ToolEpfDetails        = "fetch_epf_details"
	ToolCreditReport      = "fetch_credit_report"
)

// AllTools lists every tool the aggregator serves, in dashboard order.
var AllTools = []string{
	ToolNetWorth,
	ToolBankTransactions,
	ToolStockTransactions,
	ToolMfTransactions,
	ToolEpfDetails,
	ToolCreditReport,
}

// JSONRPCRequest is the outgoing tools/call request body.
type JSONRPCRequest struct {
	JSONRPC string         `json:"jsonrpc"`
	ID      int            `json:"id"`
	Method  string         `json:"method"`
	Params  CallToolParams `json:"params"`
}

// CallToolParams names the tool to invoke. Arguments stays empty for every
// aggregator tool but the field is part of the wire contract.
type CallToolParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// NewCallToolRequest builds the fixed-shape request for one tool.
func NewCallToolRequest(tool string) JSONRPCRequest {
	return JSONRPCRequest{
		JSONRPC: jsonRPCVersion,
		ID:      1,
		Method:  "tools/call",
		Params: CallToolParams{
			Name:      tool,
			Arguments: map[string]any{},
		},
	}
}

// rpcEnvelope is the incoming JSON-RPC response envelope. Content text is kept
// raw so the decoder can distinguish "not a string" from "not valid JSON".
type rpcEnvelope struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  *rpcResult      `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

type rpcResult struct {
	Content []rpcContent `json:"content"`
}

type rpcContent struct {
	Type string          `json:"type"`
	Text json.RawMessage `json:"text"`
}

// RPCError is the JSON-RPC error member.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
