package repository

import (
	"context"

	"carshare-settlement/internal/domain"
)

// CarRepository is the read-only car catalog.
type CarRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	List(ctx context.Context) ([]domain.Car, error)
}

// RentalRepository is the read-only rental registry. List keeps the
// order the rentals were loaded in.
type RentalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	List(ctx context.Context) ([]domain.Rental, error)
}
