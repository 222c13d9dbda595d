package services

import "errors"

// Domain errors raised by PointService. They propagate unchanged to the
// handler layer, which owns the mapping to HTTP status codes.
var (
	// ErrInvalidUserID means the user ID is not a positive integer. It is
	// detected before any repository access.
	ErrInvalidUserID = errors.New("invalid user id")
	// ErrInvalidAmount means the charge/use amount is not a positive
	// integer. It is detected after the user ID check and before any
	// repository access.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientBalance means a use requested more points than the
	// user currently holds. No write happens.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrBalanceOverflow means a charge would push the balance past the
	// maximum representable value. No write happens.
	ErrBalanceOverflow = errors.New("balance overflow")
)
