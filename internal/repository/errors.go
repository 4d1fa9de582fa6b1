package repository

import "errors"

var (
	// ErrNotFound is returned by single-row lookups when no row matches.
	ErrNotFound = errors.New("not found")

	// ErrFlightFull is returned when the guarded seat-counter update rejects
	// an increment because the plane's capacity is already sold out.
	ErrFlightFull = errors.New("flight is full")
)
