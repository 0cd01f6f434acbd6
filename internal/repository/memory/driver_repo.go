package memory

import (
	"context"
	"sync"

	"ridesharing/internal/domain/entities"
	"ridesharing/internal/repository"
)

type DriverRepository struct {
	mu      sync.RWMutex
	drivers map[int]*entities.Driver
}

func NewDriverRepository() *DriverRepository {
	return &DriverRepository{
		drivers: make(map[int]*entities.Driver),
	}
}

func (r *DriverRepository) Create(ctx context.Context, driver *entities.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.drivers[driver.ID()]; exists {
		return repository.ErrDriverExists
	}
	r.drivers[driver.ID()] = driver
	return nil
}

func (r *DriverRepository) GetByID(ctx context.Context, id int) (*entities.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	driver, exists := r.drivers[id]
	if !exists {
		return nil, repository.ErrDriverNotFound
	}
	return driver, nil
}
