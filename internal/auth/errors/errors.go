package errors

import "errors"

var (
	ErrTokenNotFound = errors.New("login token not found")
)
