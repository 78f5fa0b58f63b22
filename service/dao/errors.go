package dao

import "errors"

// Sentinel storage errors, check with errors.Is
var (
	ErrNotFound = errors.New("dao: not found")

	// ErrInvalidID is returned for an empty key
	ErrInvalidID = errors.New("dao: invalid id")

	ErrNilEntity = errors.New("dao: nil entity")

	// ErrUnsupportedParameter is returned when List receives a parameter the store cannot filter by
	ErrUnsupportedParameter = errors.New("dao: unsupported parameter")
)
