package domain

import "errors"

var (
	// ErrInvalidQuantity is returned when a requested quantity is non-positive
	// or exceeds a need's remaining capacity
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrLineNotFound is returned when adjusting a basket line that does not exist
	ErrLineNotFound = errors.New("basket line not found")

	// ErrNeedNotFound is returned when a need is not found in the catalog
	ErrNeedNotFound = errors.New("need not found")

	// ErrNeedExists is returned when creating a need whose name is already taken
	ErrNeedExists = errors.New("need already exists")

	// ErrBasketNotFound is returned when a basket is not found
	ErrBasketNotFound = errors.New("basket not found")

	// ErrBasketExists is returned when creating a basket for a user that already has one
	ErrBasketExists = errors.New("basket already exists")

	// ErrProfileNotFound is returned when a profile is not found
	ErrProfileNotFound = errors.New("profile not found")

	// ErrProfileExists is returned when creating a profile whose user name is already taken
	ErrProfileExists = errors.New("profile already exists")
)
