package errors

import "errors"

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidID           = errors.New("invalid reservation ID format")
	ErrDuplicateNumber     = errors.New("reservation number already taken")
)
