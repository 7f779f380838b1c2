package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"finsight/internal/config"
	apperrors "finsight/internal/errors"
)

const (
	sessionHeader   = "Mcp-Session-Id"
	bodyExcerptSize = 200
)

// ToolCaller is the upstream contract the domain services depend on.
type ToolCaller interface {
	CallTool(ctx context.Context, tool string) (json.RawMessage, error)
}

// Client speaks the aggregator's tools/call wire contract over HTTP.
// It performs no retries; failures propagate typed to the caller.
type Client struct {
	httpClient *http.Client
	endpoint   string
	sessionID  string
}

// NewClient builds a client for the configured aggregator endpoint.
func NewClient(cfg config.MCPConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   cfg.Endpoint,
		sessionID:  cfg.SessionID,
	}
}

// CallTool POSTs a tools/call request and decodes the double-encoded response
// down to the domain payload.
func (c *Client) CallTool(ctx context.Context, tool string) (json.RawMessage, error) {
	if c.endpoint == "" {
		return nil, apperrors.New(apperrors.ConfigMissingMCPEndpoint)
	}

	body, err := json.Marshal(NewCallToolRequest(tool))
	if err != nil {
		return nil, fmt.Errorf("marshal tools/call request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build tools/call request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")
	if c.sessionID != "" {
		req.Header.Set(sessionHeader, c.sessionID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.Wrap(apperrors.UpstreamTimeout, err)
		}
		return nil, apperrors.Wrap(apperrors.UpstreamUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.UpstreamUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("aggregator returned non-success status",
			"tool", tool,
			"status", resp.StatusCode)
		return nil, apperrors.Wrapf(apperrors.UpstreamBadStatus, nil,
			"status %d: %s", resp.StatusCode, excerpt(raw))
	}

	payload, err := Decode(string(raw))
	if err != nil {
		slog.Error("aggregator response failed to decode",
			"tool", tool,
			"error", err)
		return nil, err
	}
	return payload, nil
}

func excerpt(body []byte) string {
	if len(body) > bodyExcerptSize {
		return string(body[:bodyExcerptSize]) + "..."
	}
	return string(body)
}
