package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"

	apperrors "finsight/internal/errors"
	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

// fakeToolCaller serves canned payloads per tool, as the decoder would have
// produced them.
type fakeToolCaller struct {
	payloads map[string]string
	errs     map[string]error
	calls    int64
}

func (f *fakeToolCaller) CallTool(_ context.Context, tool string) (json.RawMessage, error) {
	atomic.AddInt64(&f.calls, 1)
	if err, ok := f.errs[tool]; ok {
		return nil, err
	}
	payload, ok := f.payloads[tool]
	if !ok {
		return nil, errors.New("unexpected tool " + tool)
	}
	return json.RawMessage(payload), nil
}

type fakeProfileAPI struct {
	names map[string]string
	err   error
}

func (f *fakeProfileAPI) Profile(_ context.Context, isin string) (models.SecurityProfile, error) {
	if f.err != nil {
		return models.SecurityProfile{}, f.err
	}
	name, ok := f.names[isin]
	if !ok {
		return models.SecurityProfile{}, errors.New("no profile for " + isin)
	}
	return models.SecurityProfile{ISIN: isin, Name: name}, nil
}

type fakeQuoteAPI struct {
	prices map[string]decimal.Decimal
	err    error
}

func (f *fakeQuoteAPI) Quote(_ context.Context, symbol string) (models.Quote, error) {
	if f.err != nil {
		return models.Quote{}, f.err
	}
	price, ok := f.prices[symbol]
	if !ok {
		return models.Quote{}, errors.New("no quote for " + symbol)
	}
	return models.Quote{Price: price, Currency: "INR", Known: true}, nil
}

// fallbackCountingMetrics counts enrichment fallbacks, everything else noop.
type fallbackCountingMetrics struct {
	NoopMetrics
	fallbacks int64
}

func (m *fallbackCountingMetrics) RecordEnrichmentFallback(string) {
	atomic.AddInt64(&m.fallbacks, 1)
}

// decodeCountingMetrics records decode-failure stages, everything else noop.
type decodeCountingMetrics struct {
	NoopMetrics
	stages []string
}

func (m *decodeCountingMetrics) RecordDecodeFailure(stage string) {
	m.stages = append(m.stages, stage)
}

var errUpstreamDown = apperrors.New(apperrors.UpstreamUnreachable)
