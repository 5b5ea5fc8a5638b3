package order

import "errors"

var (
	// -- Validation & Input --
	ErrEmptyItems   = errors.New("order items are required")
	ErrInvalidTotal = errors.New("valid total amount is required")

	// -- Resource State --
	ErrOrderNotFound = errors.New("order not found")
	ErrAccessDenied  = errors.New("access denied")
)
