package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Construction errors
	ErrInvalidArgument = errors.New("invalid argument")
	ErrMissingKey      = fmt.Errorf("%w: missing key", ErrInvalidArgument)

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Gametime errors
	ErrInvalidGametime = fmt.Errorf("%w: invalid gametime", ErrInvalidArgument)
)
