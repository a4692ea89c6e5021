package errors

import "errors"

var (
	ErrBasketNotFound = errors.New("basket not found")
	ErrInvalidID      = errors.New("invalid basket ID format")
)
