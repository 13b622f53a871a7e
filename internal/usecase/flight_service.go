package usecase

import (
	"context"
	"errors"
	"strings"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/internal/domain/repository"
	"skytrak-service/pkg/errx"
	"skytrak-service/pkg/logger"
)

// FlightService reads the flight board
type FlightService struct {
	flightRepo repository.FlightRepository
	logger     logger.Logger
}

// NewFlightService creates a new flight service
func NewFlightService(flightRepo repository.FlightRepository, logger logger.Logger) *FlightService {
	return &FlightService{
		flightRepo: flightRepo,
		logger:     logger,
	}
}

// List returns every stored flight.
func (s *FlightService) List(ctx context.Context) ([]entity.Flight, error) {
	flights, err := s.flightRepo.List(ctx)
	if err != nil {
		return nil, errx.Internal(err, "Erro ao listar voos")
	}
	if flights == nil {
		flights = []entity.Flight{}
	}
	return flights, nil
}

// Get looks a flight up by number, ignoring case.
func (s *FlightService) Get(ctx context.Context, numeroVoo string) (*entity.Flight, error) {
	numeroVoo = strings.ToUpper(strings.TrimSpace(numeroVoo))
	if numeroVoo == "" {
		return nil, errx.NotFound("Voo nao encontrado")
	}
	flight, err := s.flightRepo.FindByNumber(ctx, numeroVoo)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, errx.NotFound("Voo nao encontrado")
		}
		return nil, errx.Internal(err, "Erro ao buscar voo")
	}
	return flight, nil
}

// MergeFlights combines caller-supplied context rows with stored ones,
// keeping the first occurrence of each upper-cased flight number. Context
// rows come first; rows without a number are always kept.
func MergeFlights(supplied, stored []entity.Flight) []entity.Flight {
	seen := make(map[string]bool, len(supplied)+len(stored))
	out := make([]entity.Flight, 0, len(supplied)+len(stored))
	for _, list := range [][]entity.Flight{supplied, stored} {
		for _, f := range list {
			key := f.Key()
			if key != "" {
				if seen[key] {
					continue
				}
				seen[key] = true
			}
			out = append(out, f)
		}
	}
	return out
}
