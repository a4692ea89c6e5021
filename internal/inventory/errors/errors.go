package errors

import "errors"

var (
	ErrFlightNotFound = errors.New("flight not found")

	ErrSeatMapNotFound = errors.New("seat map not found")

	ErrInvalidID = errors.New("invalid flight ID format")

	// ErrAvailabilityBounds means the requested delta would push the
	// available counter below zero or above seat-map capacity.
	ErrAvailabilityBounds = errors.New("availability change out of bounds")

	ErrSeatOccupied = errors.New("seat already occupied")

	ErrSeatNotOccupied = errors.New("seat not occupied")

	ErrUnknownSeat = errors.New("seat label not in seat map")
)
