package models

import "errors"

// Domain failure classes. Services return these sentinels so callers can
// map them onto user-visible messages without string matching.
var (
	// ErrProductNotFound — the product id resolves to no catalogue entry.
	ErrProductNotFound = errors.New("product not found")

	// ErrMissingSize — add-to-cart was called without a size.
	ErrMissingSize = errors.New("size is required")

	// ErrNonPositiveQuantity — add-to-cart was called with quantity <= 0.
	ErrNonPositiveQuantity = errors.New("quantity must be positive")

	// ErrDuplicateEmail — registration conflicts with an existing account.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials — login failed. Deliberately generic: callers
	// must not learn whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
