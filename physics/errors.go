package physics

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned for non-positive lengths, wave speeds or
	// sample counts.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrInvalidInput is returned for negative or non-finite field magnitudes.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnhandledBoundary is returned for a boundary outside the three
	// defined variants.
	ErrUnhandledBoundary = errors.New("unhandled boundary condition")

	// ErrInvalidMode is returned for harmonic mode numbers below 1.
	ErrInvalidMode = fmt.Errorf("%w: mode number must be at least 1", ErrInvalidConfig)
)

func checkLength(l float64) error {
	if !(l > 0) || isInf(l) {
		return fmt.Errorf("%w: cavity length %v", ErrInvalidConfig, l)
	}
	return nil
}

func checkSpeed(v float64) error {
	if !(v > 0) || isInf(v) {
		return fmt.Errorf("%w: wave speed %v", ErrInvalidConfig, v)
	}
	return nil
}

func checkMode(n int) error {
	if n < 1 {
		return fmt.Errorf("%w (got %v)", ErrInvalidMode, n)
	}
	return nil
}
