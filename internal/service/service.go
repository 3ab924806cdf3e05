package service

import (
	"context"

	"carshare-settlement/internal/domain"
	"carshare-settlement/internal/pricing"
)

type SettlementService interface {
	SettleRental(ctx context.Context, rentalID int64) (*pricing.Settlement, error)
	SettleRentals(ctx context.Context) ([]*pricing.Settlement, error)
	SettleModification(ctx context.Context, mod *domain.RentalModification) (*pricing.ModificationDelta, error)
	SettleModifications(ctx context.Context, mods []domain.RentalModification) ([]*pricing.ModificationDelta, error)
}
