package repository

import (
	"context"

	"skytrak-service/internal/domain/entity"
)

// FlightRepository defines the interface for flight storage operations
type FlightRepository interface {
	List(ctx context.Context) ([]entity.Flight, error)
	FindByNumber(ctx context.Context, numeroVoo string) (*entity.Flight, error)
	Upsert(ctx context.Context, flight *entity.Flight) error
}
