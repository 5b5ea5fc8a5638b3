package user

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNameRequired       = errors.New("name is required")

	// -- Resource State --
	ErrEmailExists    = errors.New("email already registered")
	ErrUserNotFound   = errors.New("user not found")
	ErrGrowerNotFound = errors.New("grower not found")
)
