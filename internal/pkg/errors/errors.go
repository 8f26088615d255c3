package errors

import "errors"

// Custom application errors
var (
	// ErrNotFound covers missing records and ownership failures alike, so a
	// non-owner cannot distinguish "does not exist" from "not yours".
	ErrNotFound          = errors.New("resource not found")
	ErrValidation        = errors.New("validation failed")
	ErrDelivery          = errors.New("notification delivery failed")
	ErrScheduling        = errors.New("scheduling failed")
	ErrDatabaseOperation = errors.New("database operation failed")
	ErrInternalServer    = errors.New("internal server error")
)
