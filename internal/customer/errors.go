package customer

import "errors"

var (
	ErrMissingName      = errors.New("customer name is required")
	ErrMissingEmail     = errors.New("customer email is required")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrInvalidPhone     = errors.New("phone number must be in format: '+1234567890' or '123-456-7890'")
	ErrDuplicateEmail   = errors.New("customer with this email already exists")
	ErrCustomerNotFound = errors.New("customer not found")
)
