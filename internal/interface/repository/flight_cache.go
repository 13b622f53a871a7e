package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/internal/domain/repository"
	"skytrak-service/pkg/logger"
	"skytrak-service/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

// FlightListCacheKey holds the serialized flight list
const FlightListCacheKey = "skytrak:voos:all"

// CachedFlightRepository is a read-through Redis cache in front of a
// FlightRepository. Only List is cached; Upsert invalidates it.
type CachedFlightRepository struct {
	next    repository.FlightRepository
	client  *redis.Client
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  logger.Logger
}

// NewCachedFlightRepository wraps next with a cache on client
func NewCachedFlightRepository(next repository.FlightRepository, client *redis.Client, ttl time.Duration, m *metrics.Metrics, logger logger.Logger) repository.FlightRepository {
	return &CachedFlightRepository{
		next:    next,
		client:  client,
		ttl:     ttl,
		metrics: m,
		logger:  logger,
	}
}

// List serves from Redis when possible. Cache errors fall through to the store.
func (r *CachedFlightRepository) List(ctx context.Context) ([]entity.Flight, error) {
	raw, err := r.client.Get(ctx, FlightListCacheKey).Bytes()
	switch {
	case err == nil:
		var flights []entity.Flight
		if jsonErr := json.Unmarshal(raw, &flights); jsonErr == nil {
			r.count("hit")
			return flights, nil
		}
		r.logger.Warn("Discarding unreadable flight cache entry", "key", FlightListCacheKey)
	case errors.Is(err, redis.Nil):
	default:
		r.logger.Warn("Flight cache unavailable", "error", err)
		r.count("error")
	}

	r.count("miss")
	flights, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(flights); err == nil {
		if err := r.client.Set(ctx, FlightListCacheKey, data, r.ttl).Err(); err != nil {
			r.logger.Warn("Failed to fill flight cache", "error", err)
		}
	}
	return flights, nil
}

// FindByNumber is not cached
func (r *CachedFlightRepository) FindByNumber(ctx context.Context, numeroVoo string) (*entity.Flight, error) {
	return r.next.FindByNumber(ctx, numeroVoo)
}

// Upsert writes through and drops the cached list
func (r *CachedFlightRepository) Upsert(ctx context.Context, flight *entity.Flight) error {
	if err := r.next.Upsert(ctx, flight); err != nil {
		return err
	}
	if err := r.client.Del(ctx, FlightListCacheKey).Err(); err != nil {
		r.logger.Warn("Failed to invalidate flight cache", "error", err)
	}
	return nil
}

func (r *CachedFlightRepository) count(result string) {
	if r.metrics != nil {
		r.metrics.FlightCacheHits.WithLabelValues(result).Inc()
	}
}
