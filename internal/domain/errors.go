package domain

import "errors"

var (
	// ErrOutletNotFound indicates an unknown canonical outlet identifier
	ErrOutletNotFound = errors.New("outlet not found")

	// ErrAnalysisNotFound indicates no call analysis exists for a session
	ErrAnalysisNotFound = errors.New("call analysis not found")

	// ErrBookingNotFound indicates no booking exists for a reference
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidRequest indicates an invalid request was made (4xx client errors)
	ErrInvalidRequest = errors.New("invalid request")
)
