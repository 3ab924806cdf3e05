package pricing

import (
	"fmt"

	"carshare-settlement/internal/domain"
)

// Modification pairs a rental with the rental it becomes once the
// modification's overrides are applied. Modified is built once, on
// construction.
type Modification struct {
	*domain.RentalModification
	Original *domain.Rental
	Modified *domain.Rental
}

// NewModification applies mod to original.
func NewModification(mod *domain.RentalModification, original *domain.Rental) (*Modification, error) {
	if mod.RentalID != original.ID {
		return nil, fmt.Errorf("modification %d targets rental %d, got rental %d: %w",
			mod.ID, mod.RentalID, original.ID, domain.ErrRentalNotFound)
	}
	modified := mod.Apply(original)
	if err := modified.Validate(); err != nil {
		return nil, fmt.Errorf("modification %d: %w", mod.ID, err)
	}
	return &Modification{
		RentalModification: mod,
		Original:           original,
		Modified:           modified,
	}, nil
}

// ModificationDelta is what each party owes or is owed once a rental is
// modified, on top of the original settlement.
type ModificationDelta struct {
	ModificationID int64
	RentalID       int64
	Original       *Settlement
	Modified       *Settlement
	Delta          Amounts
}

// Actions returns one action per party for the delta.
func (d *ModificationDelta) Actions() []domain.Action {
	return d.Delta.Actions()
}

// SettleModification settles the original and the modified rental and
// returns the per-party difference.
func (c *Calculator) SettleModification(m *Modification, car *domain.Car) (*ModificationDelta, error) {
	original, err := c.Settle(m.Original, car)
	if err != nil {
		return nil, fmt.Errorf("modification %d: original: %w", m.ID, err)
	}
	modified, err := c.Settle(m.Modified, car)
	if err != nil {
		return nil, fmt.Errorf("modification %d: modified: %w", m.ID, err)
	}

	delta := modified.Amounts.Sub(original.Amounts)
	if err := delta.Validate(); err != nil {
		return nil, fmt.Errorf("modification %d: %w", m.ID, err)
	}
	return &ModificationDelta{
		ModificationID: m.ID,
		RentalID:       m.Original.ID,
		Original:       original,
		Modified:       modified,
		Delta:          delta,
	}, nil
}
