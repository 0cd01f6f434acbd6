// Package repository declares the lookup contracts the services depend on.
// The only implementation lives in repository/memory and keeps entities for
// the lifetime of the process; nothing is persisted.
//
// Go Learning Note — Implicit Interface Satisfaction:
// memory.RideRepository never says "implements RideRepository". Any type with
// the right method set satisfies an interface automatically, which lets the
// interface live next to its consumer instead of its implementation.
package repository

import (
	"context"
	"errors"

	"ridesharing/internal/domain/entities"
)

var (
	ErrRideNotFound   = errors.New("ride not found")
	ErrRideExists     = errors.New("ride already exists")
	ErrDriverNotFound = errors.New("driver not found")
	ErrDriverExists   = errors.New("driver already exists")
	ErrRiderNotFound  = errors.New("rider not found")
	ErrRiderExists    = errors.New("rider already exists")
)

type RideRepository interface {
	Create(ctx context.Context, ride *entities.Ride) error
	GetByID(ctx context.Context, id int) (*entities.Ride, error)
	List(ctx context.Context) ([]*entities.Ride, error)
}

type DriverRepository interface {
	Create(ctx context.Context, driver *entities.Driver) error
	GetByID(ctx context.Context, id int) (*entities.Driver, error)
}

type RiderRepository interface {
	Create(ctx context.Context, rider *entities.Rider) error
	GetByID(ctx context.Context, id int) (*entities.Rider, error)
}
