package services

import "errors"

var (
	// ErrNotFound reports that no document matched an id-based lookup,
	// update, or delete.
	ErrNotFound = errors.New("not found")

	// ErrProviderUnconfigured reports that the payment route was invoked
	// without a Stripe secret key configured at startup.
	ErrProviderUnconfigured = errors.New("payment provider is not configured")
)
