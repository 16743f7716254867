package errs

import "errors"

// Sentinel errors shared by the board use case and the HTTP layer
var (
	// Backend errors
	ErrRequestFailed = errors.New("request failed")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")

	// Dialog errors
	ErrInvalidTransition = errors.New("invalid dialog transition")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
)
