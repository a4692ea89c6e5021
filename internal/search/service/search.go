package service

import (
	"context"
	"errors"
	inventoryerrors "skyfare/internal/inventory/errors"
	"skyfare/internal/inventory/repository"
	"skyfare/pkg/config"
	apperrors "skyfare/pkg/errors"
	"skyfare/pkg/model"
	"time"
)

// SearchQuery is one route/date lookup with traveller counts.
type SearchQuery struct {
	DepCode string
	ArrCode string
	DepDate time.Time
	Adult   int
	Child   int
	Infant  int
}

// SeatCount is how many availability-counter seats the party needs.
func (q *SearchQuery) SeatCount() int {
	return q.Adult + q.Child
}

type SearchService interface {
	// Search lists flights on the route within a day either side of the
	// requested date, keeping only those with room for the party.
	// Departures in the past are never returned.
	Search(ctx context.Context, query SearchQuery) ([]*model.Flight, error)
	Offers(ctx context.Context, depCode string) ([]*model.Flight, error)
	Airports(ctx context.Context) ([]*model.Airport, error)
	SeatMap(ctx context.Context, planeType string) (*model.SeatMap, error)
	OccupiedSeats(ctx context.Context, flightID string) ([]string, error)
}

type searchService struct {
	flights  repository.FlightRepository
	airports repository.AirportRepository
	seatMaps repository.SeatMapRepository
	cfg      *config.Config
	now      func() time.Time
}

func NewSearchService(
	flights repository.FlightRepository,
	airports repository.AirportRepository,
	seatMaps repository.SeatMapRepository,
	cfg *config.Config,
) SearchService {
	return &searchService{
		flights:  flights,
		airports: airports,
		seatMaps: seatMaps,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *searchService) Search(ctx context.Context, query SearchQuery) ([]*model.Flight, error) {
	if query.DepCode == "" || query.ArrCode == "" {
		return nil, apperrors.InvalidInput("Departure and arrival codes are required")
	}
	if query.DepCode == query.ArrCode {
		return nil, apperrors.InvalidInput("Departure and arrival codes must differ")
	}
	if query.SeatCount() <= 0 {
		return nil, apperrors.InvalidInput("At least one adult or child is required")
	}
	if query.Infant > query.Adult {
		return nil, apperrors.InvalidInput("Each infant must travel with an adult")
	}

	minDate := query.DepDate.AddDate(0, 0, -1)
	maxDate := query.DepDate.AddDate(0, 0, 1)
	if now := s.now(); minDate.Before(now) {
		minDate = now
	}
	if maxDate.Before(minDate) {
		return []*model.Flight{}, nil
	}

	flights, err := s.flights.Search(ctx, repository.FlightSearchCriteria{
		DepCode:    query.DepCode,
		ArrCode:    query.ArrCode,
		MinDepDate: minDate,
		MaxDepDate: maxDate,
		MinSeats:   query.SeatCount(),
	})
	if err != nil {
		return nil, apperrors.Internal("Failed to search flights", err)
	}

	return flights, nil
}

func (s *searchService) Offers(ctx context.Context, depCode string) ([]*model.Flight, error) {
	if depCode == "" {
		return nil, apperrors.InvalidInput("Departure code is required")
	}

	flights, err := s.flights.FindOffers(ctx, depCode)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve offers", err)
	}

	return flights, nil
}

func (s *searchService) Airports(ctx context.Context) ([]*model.Airport, error) {
	airports, err := s.airports.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve airports", err)
	}

	return airports, nil
}

func (s *searchService) SeatMap(ctx context.Context, planeType string) (*model.SeatMap, error) {
	if planeType == "" {
		return nil, apperrors.InvalidInput("Plane type is required")
	}

	seatMap, err := s.seatMaps.FindByPlaneType(ctx, planeType)
	if err != nil {
		if errors.Is(err, inventoryerrors.ErrSeatMapNotFound) {
			return nil, apperrors.NotFoundWithID("Seat map", planeType)
		}
		return nil, apperrors.Internal("Failed to retrieve seat map", err)
	}

	return seatMap, nil
}

func (s *searchService) OccupiedSeats(ctx context.Context, flightID string) ([]string, error) {
	if flightID == "" {
		return nil, apperrors.InvalidInput("Flight ID cannot be empty")
	}

	flight, err := s.flights.FindByID(ctx, flightID)
	if err != nil {
		if errors.Is(err, inventoryerrors.ErrFlightNotFound) {
			return nil, apperrors.NotFoundWithID("Flight", flightID)
		}
		if errors.Is(err, inventoryerrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid flight ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve flight", err)
	}

	if flight.OccupiedSeats == nil {
		return []string{}, nil
	}
	return flight.OccupiedSeats, nil
}
