package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"finsight/internal/config"
	apperrors "finsight/internal/errors"
	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

// QuoteAPI resolves an identifier to a live price. Failures surface as
// errors; callers degrade to an explicit unknown-price quote, never a silent
// zero, because a zero price distorts downstream valuation math.
type QuoteAPI interface {
	Quote(ctx context.Context, symbol string) (models.Quote, error)
}

// UnknownQuote is the fallback value when no usable price exists.
func UnknownQuote() models.Quote {
	return models.Quote{Known: false}
}

// QuoteClient calls the external quote service.
type QuoteClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewQuoteClient builds a quote client from configuration.
func NewQuoteClient(cfg config.EnrichmentConfig) *QuoteClient {
	return &QuoteClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.QuoteBaseURL,
		apiKey:     cfg.APIKey,
	}
}

type quoteRecord struct {
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
}

// Quote resolves one symbol to a live price.
func (c *QuoteClient) Quote(ctx context.Context, symbol string) (models.Quote, error) {
	if c.apiKey == "" {
		return UnknownQuote(), apperrors.New(apperrors.ConfigMissingProfileKey)
	}

	endpoint := fmt.Sprintf("%s/quote-short/%s?apikey=%s", c.baseURL, url.PathEscape(symbol), url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return UnknownQuote(), fmt.Errorf("build quote request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return UnknownQuote(), fmt.Errorf("quote lookup %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return UnknownQuote(), fmt.Errorf("quote lookup %s: status %d", symbol, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return UnknownQuote(), fmt.Errorf("quote lookup %s: %w", symbol, err)
	}

	var records []quoteRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return UnknownQuote(), fmt.Errorf("quote lookup %s: %w", symbol, err)
	}
	if len(records) == 0 || records[0].Price.LessThanOrEqual(decimal.Zero) {
		return UnknownQuote(), fmt.Errorf("quote lookup %s: no usable price", symbol)
	}

	return models.Quote{Price: records[0].Price, Currency: "INR", Known: true}, nil
}
