package service

import (
	"context"
	"fmt"

	"carshare-settlement/internal/domain"
	"carshare-settlement/internal/logger"
	"carshare-settlement/internal/pricing"
	"carshare-settlement/internal/repository"
)

type settlementService struct {
	carRepo    repository.CarRepository
	rentalRepo repository.RentalRepository
	calc       *pricing.Calculator
}

func NewSettlementService(
	carRepo repository.CarRepository,
	rentalRepo repository.RentalRepository,
	calc *pricing.Calculator,
) SettlementService {
	return &settlementService{
		carRepo:    carRepo,
		rentalRepo: rentalRepo,
		calc:       calc,
	}
}

func (s *settlementService) SettleRental(ctx context.Context, rentalID int64) (*pricing.Settlement, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	return s.settle(ctx, rental)
}

// SettleRentals settles every rental of the registry. The first error
// aborts the whole batch.
func (s *settlementService) SettleRentals(ctx context.Context) ([]*pricing.Settlement, error) {
	logger.EnterMethod("SettlementService.SettleRentals")

	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		logger.ExitMethodWithError("SettlementService.SettleRentals", err)
		return nil, err
	}

	settlements := make([]*pricing.Settlement, 0, len(rentals))
	for i := range rentals {
		st, err := s.settle(ctx, &rentals[i])
		if err != nil {
			logger.ExitMethodWithError("SettlementService.SettleRentals", err, "rental_id", rentals[i].ID)
			return nil, err
		}
		settlements = append(settlements, st)
	}

	logger.ExitMethod("SettlementService.SettleRentals", "count", len(settlements))
	return settlements, nil
}

func (s *settlementService) settle(ctx context.Context, rental *domain.Rental) (*pricing.Settlement, error) {
	car, err := s.carRepo.GetByID(ctx, rental.CarID)
	if err != nil {
		return nil, fmt.Errorf("rental %d: %w", rental.ID, err)
	}
	st, err := s.calc.Settle(rental, car)
	if err != nil {
		return nil, err
	}
	logger.Debug("Rental settled",
		"rental_id", rental.ID,
		"duration", st.Duration,
		"price", st.Price,
		"commission", st.Total,
	)
	return st, nil
}

func (s *settlementService) SettleModification(ctx context.Context, mod *domain.RentalModification) (*pricing.ModificationDelta, error) {
	original, err := s.rentalRepo.GetByID(ctx, mod.RentalID)
	if err != nil {
		return nil, fmt.Errorf("modification %d: %w", mod.ID, err)
	}
	car, err := s.carRepo.GetByID(ctx, original.CarID)
	if err != nil {
		return nil, fmt.Errorf("modification %d: rental %d: %w", mod.ID, original.ID, err)
	}

	m, err := pricing.NewModification(mod, original)
	if err != nil {
		return nil, err
	}
	delta, err := s.calc.SettleModification(m, car)
	if err != nil {
		return nil, err
	}
	logger.Debug("Modification settled",
		"modification_id", mod.ID,
		"rental_id", original.ID,
		"driver_delta", delta.Delta.Driver,
	)
	return delta, nil
}

// SettleModifications settles mods in order. The first error aborts the
// whole batch.
func (s *settlementService) SettleModifications(ctx context.Context, mods []domain.RentalModification) ([]*pricing.ModificationDelta, error) {
	logger.EnterMethod("SettlementService.SettleModifications", "count", len(mods))

	deltas := make([]*pricing.ModificationDelta, 0, len(mods))
	for i := range mods {
		d, err := s.SettleModification(ctx, &mods[i])
		if err != nil {
			logger.ExitMethodWithError("SettlementService.SettleModifications", err, "modification_id", mods[i].ID)
			return nil, err
		}
		deltas = append(deltas, d)
	}

	logger.ExitMethod("SettlementService.SettleModifications", "count", len(deltas))
	return deltas, nil
}
