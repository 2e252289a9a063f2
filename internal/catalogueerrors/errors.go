package catalogueerrors

import "errors"

// Repository-level errors
var (
	ErrItemNotFound   = errors.New("item not found")
	ErrSellerNotFound = errors.New("seller not found")
	ErrSellerExists   = errors.New("seller already exists")
)

// business logic errors
var (
	ErrInvalidItem   = errors.New("invalid item")
	ErrInvalidSeller = errors.New("invalid seller")
)

// transport-level errors
var (
	ErrUnauthenticated = errors.New("user not logged in")
)
