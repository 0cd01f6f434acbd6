package memory

import (
	"context"
	"sync"

	"ridesharing/internal/domain/entities"
	"ridesharing/internal/repository"
)

type RiderRepository struct {
	mu     sync.RWMutex
	riders map[int]*entities.Rider
}

func NewRiderRepository() *RiderRepository {
	return &RiderRepository{
		riders: make(map[int]*entities.Rider),
	}
}

func (r *RiderRepository) Create(ctx context.Context, rider *entities.Rider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.riders[rider.ID()]; exists {
		return repository.ErrRiderExists
	}
	r.riders[rider.ID()] = rider
	return nil
}

func (r *RiderRepository) GetByID(ctx context.Context, id int) (*entities.Rider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rider, exists := r.riders[id]
	if !exists {
		return nil, repository.ErrRiderNotFound
	}
	return rider, nil
}
