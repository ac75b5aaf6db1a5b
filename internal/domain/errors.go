package domain

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist.
	// Keeping this sentinel in domain allows adapters to map it consistently to 404/not_found.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidCredentials hides whether email or password failed.
	// The reason is to prevent account-enumeration side channels.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrConflict           = errors.New("conflict")
	// ErrCapacityReached signals that a plan's approved-participant limit is full.
	// Both the request path and the approve path surface it so callers see one failure mode.
	ErrCapacityReached = errors.New("participant capacity reached")
	ErrSessionRevoked  = errors.New("session revoked")
	ErrTokenExpired    = errors.New("token expired")
)
