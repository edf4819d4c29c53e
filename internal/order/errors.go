package order

import "errors"

var (
	ErrMissingCustomer = errors.New("customer ID is required")
	ErrNoProducts      = errors.New("at least one product is required")
	ErrCustomerInvalid = errors.New("customer does not exist")
	ErrProductInvalid  = errors.New("one or more products do not exist")
	ErrOrderNotFound   = errors.New("order not found")
)
