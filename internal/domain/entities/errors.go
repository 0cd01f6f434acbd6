package entities

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is the single error kind raised by the entities: a ride
// with a non-positive distance, a driver rating outside [0, 5], or a nil ride
// handed to AddRide/RequestRide.
//
// Go Learning Note — Sentinel Errors and Wrapping:
// A sentinel error is a package-level error value that callers compare against.
// Instead of returning it bare, we wrap it with fmt.Errorf and the %w verb so the
// message can say *what* was wrong while errors.Is(err, ErrInvalidArgument)
// still reports true. This replaces exception class hierarchies in other
// languages: the category is the sentinel, the detail is the message.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrUnknownVariant is returned when a ride variant has no entry in the fare table.
var ErrUnknownVariant = errors.New("unknown ride variant")

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// NaN compares false against everything, so both checks are written as the
// positive condition that must hold.
func requirePositive(name string, v float64) error {
	if !(v > 0) {
		return invalidArgument("%s must be greater than 0", name)
	}
	if math.IsInf(v, 1) {
		return invalidArgument("%s must be finite", name)
	}
	return nil
}

func requireInRange(name string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return invalidArgument("%s must be between %g and %g", name, lo, hi)
	}
	return nil
}

func requireRide(ride *Ride) error {
	if ride == nil {
		return invalidArgument("ride must not be nil")
	}
	return nil
}
