package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product id does not exist in the catalog
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrEmptyCart is returned when checkout is attempted with no cart lines
	ErrEmptyCart = errors.New("cart is empty")

	// ErrCheckoutInFlight is returned when an order is already being processed
	ErrCheckoutInFlight = errors.New("checkout already in progress")

	// ErrStateUnavailable is returned when the persisted state store cannot be reached
	ErrStateUnavailable = errors.New("state store unavailable")

	// ErrKeyNotFound is returned when a state key has never been written
	ErrKeyNotFound = errors.New("state key not found")
)
