package product

import "errors"

var (
	ErrMissingName     = errors.New("product name is required")
	ErrInvalidPrice    = errors.New("product price must be positive")
	ErrInvalidStock    = errors.New("product stock cannot be negative")
	ErrProductNotFound = errors.New("product not found")
)
