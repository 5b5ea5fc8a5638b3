package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNoUpdateFields  = errors.New("no fields to update")
)
