// Package service implements the availability ledger: the single
// source of truth for how many seats and which seat labels remain free
// on every flight. Both the basket and reservation managers depend on
// the Ledger interface, never on each other.
package service

import (
	"context"
	"errors"
	"fmt"
	inventoryerrors "skyfare/internal/inventory/errors"
	"skyfare/internal/inventory/repository"
	"skyfare/pkg/config"
	mongotx "skyfare/pkg/db/mongo"
	apperrors "skyfare/pkg/errors"
	"skyfare/pkg/model"
)

type Ledger interface {
	FlightByID(ctx context.Context, id string) (*model.Flight, error)
	SeatMapCapacity(ctx context.Context, planeType string) (int, error)
	// ChangeAvailability applies available += delta atomically. A
	// positive delta releases seats back to the pool, a negative delta
	// claims them. The counter never leaves [0, seat-map capacity].
	ChangeAvailability(ctx context.Context, flightID string, delta int) error
	IsSeatOccupied(ctx context.Context, flightID, seat string) (bool, error)
	// ChangeSeatOccupancy marks a seat label taken or free. Claiming an
	// occupied seat and freeing a free seat both fail with Conflict.
	ChangeSeatOccupancy(ctx context.Context, flightID, seat string, occupied bool) error
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

type ledgerService struct {
	flights  repository.FlightRepository
	seatMaps repository.SeatMapRepository
	cfg      *config.Config
}

func NewLedgerService(
	flights repository.FlightRepository,
	seatMaps repository.SeatMapRepository,
	cfg *config.Config,
) Ledger {
	return &ledgerService{
		flights:  flights,
		seatMaps: seatMaps,
		cfg:      cfg,
	}
}

func (s *ledgerService) FlightByID(ctx context.Context, id string) (*model.Flight, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Flight ID cannot be empty")
	}

	flight, err := s.flights.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, inventoryerrors.ErrFlightNotFound) {
			return nil, apperrors.NotFoundWithID("Flight", id)
		}
		if errors.Is(err, inventoryerrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid flight ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve flight", err)
	}

	return flight, nil
}

func (s *ledgerService) SeatMapCapacity(ctx context.Context, planeType string) (int, error) {
	seatMap, err := s.seatMaps.FindByPlaneType(ctx, planeType)
	if err != nil {
		if errors.Is(err, inventoryerrors.ErrSeatMapNotFound) {
			return 0, apperrors.NotFoundWithID("Seat map", planeType)
		}
		return 0, apperrors.Internal("Failed to retrieve seat map", err)
	}

	return seatMap.Capacity(), nil
}

func (s *ledgerService) ChangeAvailability(ctx context.Context, flightID string, delta int) error {
	if delta == 0 {
		return nil
	}

	flight, err := s.FlightByID(ctx, flightID)
	if err != nil {
		return err
	}

	capacity, err := s.SeatMapCapacity(ctx, flight.PlaneType)
	if err != nil {
		return err
	}

	err = s.flights.ApplyAvailabilityDelta(ctx, flightID, delta, capacity)
	if err != nil {
		if errors.Is(err, inventoryerrors.ErrFlightNotFound) {
			return apperrors.NotFoundWithID("Flight", flightID)
		}
		if errors.Is(err, inventoryerrors.ErrAvailabilityBounds) {
			return apperrors.Conflict("Flight not available").WithDetails(map[string]any{
				"flight_id": flightID,
				"delta":     delta,
			})
		}
		return apperrors.Internal("Failed to change availability", err)
	}

	return nil
}

func (s *ledgerService) IsSeatOccupied(ctx context.Context, flightID, seat string) (bool, error) {
	flight, err := s.FlightByID(ctx, flightID)
	if err != nil {
		return false, err
	}
	return flight.IsSeatOccupied(seat), nil
}

func (s *ledgerService) ChangeSeatOccupancy(ctx context.Context, flightID, seat string, occupied bool) error {
	if seat == "" {
		return apperrors.InvalidInput("Seat label cannot be empty")
	}

	flight, err := s.FlightByID(ctx, flightID)
	if err != nil {
		return err
	}

	seatMap, err := s.seatMaps.FindByPlaneType(ctx, flight.PlaneType)
	if err != nil {
		if errors.Is(err, inventoryerrors.ErrSeatMapNotFound) {
			return apperrors.NotFoundWithID("Seat map", flight.PlaneType)
		}
		return apperrors.Internal("Failed to retrieve seat map", err)
	}
	if !seatMap.HasSeat(seat) {
		return apperrors.InvalidInput(fmt.Sprintf("Seat %s does not exist on plane type %s", seat, flight.PlaneType))
	}

	if occupied {
		err = s.flights.OccupySeat(ctx, flightID, seat)
	} else {
		err = s.flights.ReleaseSeat(ctx, flightID, seat)
	}
	if err != nil {
		if errors.Is(err, inventoryerrors.ErrFlightNotFound) {
			return apperrors.NotFoundWithID("Flight", flightID)
		}
		if errors.Is(err, inventoryerrors.ErrSeatOccupied) {
			return apperrors.Conflict(fmt.Sprintf("Seat %s already occupied on flight %s", seat, flightID))
		}
		if errors.Is(err, inventoryerrors.ErrSeatNotOccupied) {
			return apperrors.Conflict(fmt.Sprintf("Seat %s not occupied on flight %s", seat, flightID))
		}
		return apperrors.Internal("Failed to change seat occupancy", err)
	}

	return nil
}

func (s *ledgerService) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return s.flights.ExecuteTransaction(ctx, fn)
}
