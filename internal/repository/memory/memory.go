package memory

import (
	"context"
	"fmt"

	"carshare-settlement/internal/domain"
	"carshare-settlement/internal/repository"
)

// Store bundles the in-memory repositories loaded from one input document.
// It is immutable once built. Pass the fields, not the Store, where a single
// repository is expected: both embed GetByID and List.
type Store struct {
	repository.CarRepository
	repository.RentalRepository
}

func NewStore(cars []domain.Car, rentals []domain.Rental) (*Store, error) {
	carRepo, err := NewCarRepository(cars)
	if err != nil {
		return nil, err
	}
	rentalRepo, err := NewRentalRepository(rentals)
	if err != nil {
		return nil, err
	}
	// every rental must reference a known car, whether it is settled or not
	for _, rt := range rentals {
		if _, err := carRepo.GetByID(context.Background(), rt.CarID); err != nil {
			return nil, fmt.Errorf("rental %d: %w", rt.ID, err)
		}
	}
	return &Store{
		CarRepository:    carRepo,
		RentalRepository: rentalRepo,
	}, nil
}

type carRepository struct {
	byID  map[int64]int
	items []domain.Car
}

func NewCarRepository(cars []domain.Car) (repository.CarRepository, error) {
	r := &carRepository{
		byID:  make(map[int64]int, len(cars)),
		items: make([]domain.Car, len(cars)),
	}
	copy(r.items, cars)
	for i, c := range r.items {
		if _, ok := r.byID[c.ID]; ok {
			return nil, fmt.Errorf("car %d: %w", c.ID, domain.ErrDuplicateID)
		}
		r.byID[c.ID] = i
	}
	return r, nil
}

func (r *carRepository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("car %d: %w", id, domain.ErrCarNotFound)
	}
	c := r.items[i]
	return &c, nil
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	out := make([]domain.Car, len(r.items))
	copy(out, r.items)
	return out, nil
}

type rentalRepository struct {
	byID  map[int64]int
	items []domain.Rental
}

func NewRentalRepository(rentals []domain.Rental) (repository.RentalRepository, error) {
	r := &rentalRepository{
		byID:  make(map[int64]int, len(rentals)),
		items: make([]domain.Rental, len(rentals)),
	}
	copy(r.items, rentals)
	for i, rt := range r.items {
		if _, ok := r.byID[rt.ID]; ok {
			return nil, fmt.Errorf("rental %d: %w", rt.ID, domain.ErrDuplicateID)
		}
		r.byID[rt.ID] = i
	}
	return r, nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("rental %d: %w", id, domain.ErrRentalNotFound)
	}
	rt := r.items[i]
	return &rt, nil
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	out := make([]domain.Rental, len(r.items))
	copy(out, r.items)
	return out, nil
}
