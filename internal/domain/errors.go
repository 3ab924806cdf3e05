package domain

import "errors"

var (
	// Reference errors
	ErrCarNotFound    = errors.New("car not found")
	ErrRentalNotFound = errors.New("rental not found")
	ErrDuplicateID    = errors.New("duplicate identifier")

	// Input errors
	ErrMalformedDate = errors.New("malformed calendar date")

	// Domain violations
	ErrInvalidPeriod    = errors.New("end date must be >= start date")
	ErrNegativeDistance = errors.New("distance cannot be negative")
	ErrUnbalancedLedger = errors.New("settlement amounts do not sum to zero")
)
