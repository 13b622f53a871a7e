package usecase

import (
	"context"
	"time"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/internal/usecase/risk"
	"skytrak-service/pkg/logger"
	"skytrak-service/pkg/metrics"
)

// RiskResult is the delay-risk response for one flight
type RiskResult struct {
	NumeroVoo string           `json:"numero_voo"`
	Risco     entity.DelayRisk `json:"risco"`
}

// RiskService scores delay risk for stored flights
type RiskService struct {
	flights    *FlightService
	audit      *AuditService
	thresholds risk.Thresholds
	now        func() time.Time
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// NewRiskService creates a new risk service
func NewRiskService(flights *FlightService, audit *AuditService, thresholds risk.Thresholds, m *metrics.Metrics, logger logger.Logger) *RiskService {
	return &RiskService{
		flights:    flights,
		audit:      audit,
		thresholds: thresholds,
		now:        time.Now,
		metrics:    m,
		logger:     logger,
	}
}

// Assess scores one flight and records the query in the access log.
func (s *RiskService) Assess(ctx context.Context, userID uint, numeroVoo, modelo string) (*RiskResult, error) {
	flight, err := s.flights.Get(ctx, numeroVoo)
	if err != nil {
		return nil, err
	}

	r := risk.Assess(*flight, modelo, s.now(), s.thresholds)
	s.metrics.RiskQueries.WithLabelValues(r.Label).Inc()

	s.audit.Record(ctx, userID, entity.ActionQueryRisk, entity.EntityFlight, map[string]interface{}{
		"numero_voo": flight.NumeroVoo,
		"modelo":     r.Modelo,
		"percent":    r.Percent,
		"label":      r.Label,
	})

	return &RiskResult{NumeroVoo: flight.NumeroVoo, Risco: r}, nil
}
