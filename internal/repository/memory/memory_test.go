package memory

import (
	"context"
	"testing"

	"ridesharing/internal/domain/entities"
	"ridesharing/internal/repository"
)

var (
	_ repository.RideRepository   = (*RideRepository)(nil)
	_ repository.DriverRepository = (*DriverRepository)(nil)
	_ repository.RiderRepository  = (*RiderRepository)(nil)
)

func TestRideRepository_CreateAndGet(t *testing.T) {
	repo := NewRideRepository()
	ctx := context.Background()

	ride, _ := entities.NewRide(1, "Home", "Work", 5.0, entities.RideVariantStandard)
	if err := repo.Create(ctx, ride); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got != ride {
		t.Error("Expected the same ride instance back")
	}

	if _, err := repo.GetByID(ctx, 2); err != repository.ErrRideNotFound {
		t.Errorf("Expected ErrRideNotFound, got %v", err)
	}
}

func TestRideRepository_DuplicateID(t *testing.T) {
	repo := NewRideRepository()
	ctx := context.Background()

	first, _ := entities.NewRide(1, "Home", "Work", 5.0, entities.RideVariantStandard)
	second, _ := entities.NewRide(1, "Home", "Airport", 15.0, entities.RideVariantPremium)
	repo.Create(ctx, first)

	if err := repo.Create(ctx, second); err != repository.ErrRideExists {
		t.Errorf("Expected ErrRideExists, got %v", err)
	}
	got, _ := repo.GetByID(ctx, 1)
	if got != first {
		t.Error("Expected original ride to be kept")
	}
}

func TestRideRepository_ListSortedByID(t *testing.T) {
	repo := NewRideRepository()
	ctx := context.Background()

	for _, id := range []int{5, 1, 3} {
		ride, _ := entities.NewRide(id, "A", "B", 1.0, entities.RideVariantStandard)
		repo.Create(ctx, ride)
	}

	rides, _ := repo.List(ctx)
	if len(rides) != 3 {
		t.Fatalf("Expected 3 rides, got %d", len(rides))
	}
	for i, want := range []int{1, 3, 5} {
		if rides[i].ID() != want {
			t.Errorf("rides[%d]: expected id %d, got %d", i, want, rides[i].ID())
		}
	}
}

func TestDriverRepository(t *testing.T) {
	repo := NewDriverRepository()
	ctx := context.Background()

	driver, _ := entities.NewDriver(101, "John Doe", 4.8)
	if err := repo.Create(ctx, driver); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := repo.Create(ctx, driver); err != repository.ErrDriverExists {
		t.Errorf("Expected ErrDriverExists, got %v", err)
	}
	if _, err := repo.GetByID(ctx, 999); err != repository.ErrDriverNotFound {
		t.Errorf("Expected ErrDriverNotFound, got %v", err)
	}
}

func TestRiderRepository(t *testing.T) {
	repo := NewRiderRepository()
	ctx := context.Background()

	rider := entities.NewRider(201, "Alice")
	if err := repo.Create(ctx, rider); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := repo.Create(ctx, rider); err != repository.ErrRiderExists {
		t.Errorf("Expected ErrRiderExists, got %v", err)
	}
	got, err := repo.GetByID(ctx, 201)
	if err != nil || got != rider {
		t.Errorf("Expected stored rider, got %v (%v)", got, err)
	}
}
