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
)

// ProfileAPI resolves a security identifier to its public profile.
type ProfileAPI interface {
	Profile(ctx context.Context, isin string) (models.SecurityProfile, error)
}

// ProfileClient calls the external profile service, keyed by an
// environment-provided API key.
type ProfileClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewProfileClient builds a profile client from configuration.
func NewProfileClient(cfg config.EnrichmentConfig) *ProfileClient {
	return &ProfileClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.ProfileBaseURL,
		apiKey:     cfg.APIKey,
	}
}

// profileRecord is the provider's response shape; it answers with a
// one-element array per identifier.
type profileRecord struct {
	CompanyName       string          `json:"companyName"`
	Symbol            string          `json:"symbol"`
	ExchangeShortName string          `json:"exchangeShortName"`
	MktCap            json.Number     `json:"mktCap"`
	IPODate           string          `json:"ipoDate"`
	Website           string          `json:"website"`
}

// Profile resolves one ISIN. A missing API key is a distinguishable
// configuration error, not a generic failure.
func (c *ProfileClient) Profile(ctx context.Context, isin string) (models.SecurityProfile, error) {
	if c.apiKey == "" {
		return models.SecurityProfile{}, apperrors.New(apperrors.ConfigMissingProfileKey)
	}

	endpoint := fmt.Sprintf("%s/profile/%s?apikey=%s", c.baseURL, url.PathEscape(isin), url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.SecurityProfile{}, fmt.Errorf("build profile request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.SecurityProfile{}, fmt.Errorf("profile lookup %s: %w", isin, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.SecurityProfile{}, fmt.Errorf("profile lookup %s: status %d", isin, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.SecurityProfile{}, fmt.Errorf("profile lookup %s: %w", isin, err)
	}

	var records []profileRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return models.SecurityProfile{}, fmt.Errorf("profile lookup %s: %w", isin, err)
	}
	if len(records) == 0 {
		return models.SecurityProfile{}, fmt.Errorf("profile lookup %s: no match", isin)
	}

	record := records[0]
	return models.SecurityProfile{
		ISIN:      isin,
		Name:      record.CompanyName,
		Ticker:    record.Symbol,
		Exchange:  record.ExchangeShortName,
		MarketCap: record.MktCap.String(),
		IPODate:   record.IPODate,
		Website:   record.Website,
	}, nil
}
