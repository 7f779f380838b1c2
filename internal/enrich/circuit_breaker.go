package enrich

import (
	"context"
	"sync"
	"time"

	apperrors "finsight/internal/errors"
	"finsight/internal/models"
)

// CircuitBreakerState tracks the breaker's lifecycle.
type CircuitBreakerState int

const (
	StateClosed CircuitBreakerState = iota
	StateOpen
	StateHalfOpen
)

type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 3,
	}
}

// CircuitBreaker guards the quote feed: once it starts failing consistently,
// dashboard loads should degrade fast to unknown prices instead of stalling
// on a dead upstream for every security in the batch.
type CircuitBreaker struct {
	mu                sync.Mutex
	config            CircuitBreakerConfig
	state             CircuitBreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{config: config, state: StateClosed}
}

func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen && time.Since(cb.lastFailureTime) > cb.config.ResetTimeout {
		cb.state = StateHalfOpen
		cb.halfOpenSuccesses = 0
		return false
	}
	return cb.state == StateOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			cb.state = StateClosed
			cb.failures = 0
			cb.halfOpenSuccesses = 0
		}
	case StateClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = time.Now()
	if cb.state == StateHalfOpen {
		cb.state = StateOpen
		return
	}
	cb.failures++
	if cb.failures >= cb.config.MaxFailures {
		cb.state = StateOpen
	}
}

// State returns the current breaker state.
func (cb *CircuitBreaker) State() CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// GuardedQuoteClient wraps a QuoteAPI with the circuit breaker.
type GuardedQuoteClient struct {
	inner   QuoteAPI
	breaker *CircuitBreaker
}

func NewGuardedQuoteClient(inner QuoteAPI, breaker *CircuitBreaker) *GuardedQuoteClient {
	return &GuardedQuoteClient{inner: inner, breaker: breaker}
}

func (g *GuardedQuoteClient) Quote(ctx context.Context, symbol string) (models.Quote, error) {
	if g.breaker.IsOpen() {
		return UnknownQuote(), apperrors.New(apperrors.EnrichCircuitOpen)
	}

	quote, err := g.inner.Quote(ctx, symbol)
	if err != nil {
		g.breaker.RecordFailure()
		return UnknownQuote(), err
	}
	g.breaker.RecordSuccess()
	return quote, nil
}
