package domain

import "errors"

// Sentinel errors shared by every layer.
// Use errors.Is to check: errors.Is(err, domain.ErrNotFound)
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrIntegrity       = errors.New("integrity violation")
	ErrDuplicateReview = errors.New("idempotency key already used for another card")
)
