package repository

import (
	"context"
	"errors"
	"time"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/internal/domain/repository"
	"skytrak-service/pkg/logger"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// ErrLLMRateLimited is returned when the call budget is exhausted
var ErrLLMRateLimited = errors.New("llm call budget exhausted")

// GuardConfig bounds calls to an external responder
type GuardConfig struct {
	Timeout           time.Duration
	RequestsPerMinute int
	Burst             int
	FailureThreshold  uint32
	OpenTimeout       time.Duration
}

// GuardedResponder wraps a Responder with a rate limiter, a per-call timeout
// and a circuit breaker.
type GuardedResponder struct {
	next    repository.Responder
	breaker *gobreaker.CircuitBreaker
	limiter *rate.Limiter
	timeout time.Duration
}

// NewGuardedResponder wraps next
func NewGuardedResponder(next repository.Responder, cfg GuardConfig, logger logger.Logger) repository.Responder {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 30
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 5
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 60 * time.Second
	}

	threshold := cfg.FailureThreshold
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        next.Provider(),
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("LLM circuit breaker state change", "provider", name, "from", from.String(), "to", to.String())
		},
	})

	return &GuardedResponder{
		next:    next,
		breaker: breaker,
		limiter: rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60), cfg.Burst),
		timeout: cfg.Timeout,
	}
}

// Provider returns the wrapped provider name
func (g *GuardedResponder) Provider() string {
	return g.next.Provider()
}

// Reply calls the wrapped responder unless the budget is spent or the breaker is open
func (g *GuardedResponder) Reply(ctx context.Context, req repository.LLMRequest) (*entity.LLMReply, error) {
	if !g.limiter.Allow() {
		return nil, ErrLLMRateLimited
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	result, err := g.breaker.Execute(func() (interface{}, error) {
		return g.next.Reply(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return result.(*entity.LLMReply), nil
}
