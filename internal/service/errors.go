package service

import "errors"

// Common service errors.
var (
	// ErrInvalidInput is returned when a caller-supplied value fails
	// validation before any persistence call is made.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientGems is returned when a gem adjustment would drive the
	// balance negative.
	ErrInsufficientGems = errors.New("insufficient gems")
)
