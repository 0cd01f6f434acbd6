package memory

import (
	"context"
	"sort"
	"sync"

	"ridesharing/internal/domain/entities"
	"ridesharing/internal/repository"
)

// RideRepository keeps rides in memory, keyed by their caller-assigned id.
// Ride ids are only unique by convention, so Create refuses to overwrite an
// existing entry rather than silently replacing a ride others may reference.
type RideRepository struct {
	mu    sync.RWMutex
	rides map[int]*entities.Ride
}

func NewRideRepository() *RideRepository {
	return &RideRepository{
		rides: make(map[int]*entities.Ride),
	}
}

func (r *RideRepository) Create(ctx context.Context, ride *entities.Ride) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rides[ride.ID()]; exists {
		return repository.ErrRideExists
	}
	r.rides[ride.ID()] = ride
	return nil
}

func (r *RideRepository) GetByID(ctx context.Context, id int) (*entities.Ride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ride, exists := r.rides[id]
	if !exists {
		return nil, repository.ErrRideNotFound
	}
	return ride, nil
}

// List returns every ride ordered by id.
//
// Go Learning Note — Map Iteration Order:
// Ranging over a map yields keys in a deliberately randomized order, so any
// output that must be stable (API responses, tests) has to be sorted.
func (r *RideRepository) List(ctx context.Context) ([]*entities.Ride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rides := make([]*entities.Ride, 0, len(r.rides))
	for _, ride := range r.rides {
		rides = append(rides, ride)
	}
	sort.Slice(rides, func(i, j int) bool { return rides[i].ID() < rides[j].ID() })
	return rides, nil
}
