package models

import "errors"

// Domain failures surfaced by the point service. All three are deterministic:
// retrying with the same arguments reproduces the same outcome, so nothing
// retries them internally. Call sites wrap with %w to attach the offending
// id/amount.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrNegativeAmount    = errors.New("amount cannot be negative")
	ErrInsufficientPoint = errors.New("insufficient point")
)
