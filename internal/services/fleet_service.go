package services

import (
	"context"
	"errors"
	"sync"

	"ridesharing/internal/domain/entities"
	"ridesharing/internal/repository"
)

// Service-level errors. The not-found and already-exists errors are the
// repository sentinels re-exported so handlers only need this package.
var (
	ErrRideNotFound   = repository.ErrRideNotFound
	ErrRideExists     = repository.ErrRideExists
	ErrDriverNotFound = repository.ErrDriverNotFound
	ErrDriverExists   = repository.ErrDriverExists
	ErrRiderNotFound  = repository.ErrRiderNotFound
	ErrRiderExists    = repository.ErrRiderExists
)

// FleetService is the entry point for using the entities from concurrent
// callers such as HTTP handlers. Rides, drivers and riders carry no locks of
// their own, and a single ride may be shared by a driver and a rider, so every
// operation that reads or mutates an entity runs under one RWMutex.
//
// Go Learning Note — sync.RWMutex:
// An RWMutex allows any number of concurrent readers (RLock) or exactly one
// writer (Lock). Reports like Info and ViewRides take the read lock so they
// can run in parallel; CalculateFare, AssignRide and RequestRide take the
// write lock because they change entity state.
type FleetService struct {
	mu sync.RWMutex

	rides        repository.RideRepository
	drivers      repository.DriverRepository
	riders       repository.RiderRepository
	fareTable    entities.FareTable
	notification *NotificationService
}

func NewFleetService(
	rides repository.RideRepository,
	drivers repository.DriverRepository,
	riders repository.RiderRepository,
	fareTable entities.FareTable,
	notification *NotificationService,
) *FleetService {
	return &FleetService{
		rides:        rides,
		drivers:      drivers,
		riders:       riders,
		fareTable:    fareTable,
		notification: notification,
	}
}

type CreateRideRequest struct {
	ID       int
	Pickup   string
	Dropoff  string
	Distance float64
	Variant  entities.RideVariant
}

// CreateRide constructs a ride with the configured fare table. The fare is
// left at 0; call CalculateFare to price it.
func (s *FleetService) CreateRide(ctx context.Context, req CreateRideRequest) (*entities.Ride, error) {
	variant := req.Variant
	if variant == "" {
		variant = entities.RideVariantStandard
	}

	ride, err := entities.NewRideWithTable(s.fareTable, req.ID, req.Pickup, req.Dropoff, req.Distance, variant)
	if err != nil {
		return nil, err
	}
	if err := s.rides.Create(ctx, ride); err != nil {
		return nil, err
	}
	return ride, nil
}

// CalculateFare prices a stored ride and returns it.
func (s *FleetService) CalculateFare(ctx context.Context, rideID int) (*entities.Ride, error) {
	ride, err := s.rides.GetByID(ctx, rideID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	ride.CalculateFare()
	s.notification.NotifyFareCalculated(ride)
	return ride, nil
}

// GetRide returns a stored ride. Read its fields through DescribeRide or
// WithReadLock when other goroutines may be pricing it concurrently.
func (s *FleetService) GetRide(ctx context.Context, rideID int) (*entities.Ride, error) {
	return s.rides.GetByID(ctx, rideID)
}

func (s *FleetService) ListRides(ctx context.Context) ([]*entities.Ride, error) {
	return s.rides.List(ctx)
}

func (s *FleetService) DescribeRide(ctx context.Context, rideID int) (string, error) {
	ride, err := s.rides.GetByID(ctx, rideID)
	if err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return ride.Describe(), nil
}

// WithReadLock runs fn while holding the fleet's read lock, for callers that
// need a consistent view of entity state (e.g. JSON encoding).
func (s *FleetService) WithReadLock(fn func()) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn()
}

func (s *FleetService) RegisterDriver(ctx context.Context, id int, name string, rating float64) (*entities.Driver, error) {
	driver, err := entities.NewDriver(id, name, rating)
	if err != nil {
		return nil, err
	}
	if err := s.drivers.Create(ctx, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

func (s *FleetService) GetDriver(ctx context.Context, driverID int) (*entities.Driver, error) {
	return s.drivers.GetByID(ctx, driverID)
}

// AssignRide adds a stored ride to a driver's served-ride history.
func (s *FleetService) AssignRide(ctx context.Context, driverID, rideID int) (*entities.Driver, error) {
	driver, err := s.drivers.GetByID(ctx, driverID)
	if err != nil {
		return nil, err
	}
	ride, err := s.rides.GetByID(ctx, rideID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := driver.AddRide(ride); err != nil {
		return nil, err
	}
	s.notification.NotifyDriverOfRide(driver, ride)
	return driver, nil
}

func (s *FleetService) DriverInfo(ctx context.Context, driverID int) (string, error) {
	driver, err := s.drivers.GetByID(ctx, driverID)
	if err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return driver.Info(), nil
}

func (s *FleetService) RegisterRider(ctx context.Context, id int, name string) (*entities.Rider, error) {
	rider := entities.NewRider(id, name)
	if err := s.riders.Create(ctx, rider); err != nil {
		return nil, err
	}
	return rider, nil
}

func (s *FleetService) GetRider(ctx context.Context, riderID int) (*entities.Rider, error) {
	return s.riders.GetByID(ctx, riderID)
}

// RequestRide adds a stored ride to a rider's requested-ride history.
func (s *FleetService) RequestRide(ctx context.Context, riderID, rideID int) (*entities.Rider, error) {
	rider, err := s.riders.GetByID(ctx, riderID)
	if err != nil {
		return nil, err
	}
	ride, err := s.rides.GetByID(ctx, rideID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := rider.RequestRide(ride); err != nil {
		return nil, err
	}
	s.notification.NotifyRiderOfRequest(rider, ride)
	return rider, nil
}

func (s *FleetService) ViewRides(ctx context.Context, riderID int) (string, error) {
	rider, err := s.riders.GetByID(ctx, riderID)
	if err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return rider.ViewRides(), nil
}

// IsNotFound reports whether err is one of the lookup failures.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRideNotFound) ||
		errors.Is(err, ErrDriverNotFound) ||
		errors.Is(err, ErrRiderNotFound)
}

// IsConflict reports whether err is a duplicate-id failure.
func IsConflict(err error) bool {
	return errors.Is(err, ErrRideExists) ||
		errors.Is(err, ErrDriverExists) ||
		errors.Is(err, ErrRiderExists)
}
