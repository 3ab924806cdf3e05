package document

import (
	"fmt"
	"time"

	"carshare-settlement/internal/domain"
	"carshare-settlement/internal/pricing"
)

// Batch is the domain view of an input document.
type Batch struct {
	Cars          []domain.Car
	Rentals       []domain.Rental
	Modifications []domain.RentalModification
}

// ParseDate converts a yyyy-mm-dd string into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrMalformedDate, s)
	}
	return d, nil
}

// ToDomain maps the document to domain values. Dates are parsed and
// rental periods checked; references are resolved later by the catalog.
func (in *Input) ToDomain() (*Batch, error) {
	b := &Batch{
		Cars:          make([]domain.Car, 0, len(in.Cars)),
		Rentals:       make([]domain.Rental, 0, len(in.Rentals)),
		Modifications: make([]domain.RentalModification, 0, len(in.RentalModifications)),
	}

	for _, c := range in.Cars {
		b.Cars = append(b.Cars, MapCarInputToDomain(c))
	}

	for _, r := range in.Rentals {
		rental, err := MapRentalInputToDomain(r)
		if err != nil {
			return nil, err
		}
		b.Rentals = append(b.Rentals, *rental)
	}

	for _, m := range in.RentalModifications {
		mod, err := MapModificationInputToDomain(m)
		if err != nil {
			return nil, err
		}
		b.Modifications = append(b.Modifications, *mod)
	}

	return b, nil
}

func MapCarInputToDomain(c CarInput) domain.Car {
	return domain.Car{
		ID:               c.ID,
		PricePerDayCents: c.PricePerDay,
		PricePerKmCents:  c.PricePerKm,
	}
}

func MapRentalInputToDomain(r RentalInput) (*domain.Rental, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("rental %d start_date: %w", r.ID, err)
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("rental %d end_date: %w", r.ID, err)
	}

	rental := &domain.Rental{
		ID:                  r.ID,
		CarID:               r.CarID,
		StartDate:           start,
		EndDate:             end,
		Distance:            r.Distance,
		DeductibleReduction: r.DeductibleReduction,
	}
	if err := rental.Validate(); err != nil {
		return nil, fmt.Errorf("rental %d: %w", r.ID, err)
	}
	return rental, nil
}

func MapModificationInputToDomain(m ModificationInput) (*domain.RentalModification, error) {
	mod := &domain.RentalModification{
		ID:       m.ID,
		RentalID: m.RentalID,
		Distance: m.Distance,
	}
	if m.StartDate != nil {
		d, err := ParseDate(*m.StartDate)
		if err != nil {
			return nil, fmt.Errorf("rental modification %d start_date: %w", m.ID, err)
		}
		mod.StartDate = &d
	}
	if m.EndDate != nil {
		d, err := ParseDate(*m.EndDate)
		if err != nil {
			return nil, fmt.Errorf("rental modification %d end_date: %w", m.ID, err)
		}
		mod.EndDate = &d
	}
	if mod.Distance != nil && *mod.Distance < 0 {
		return nil, fmt.Errorf("rental modification %d: %w", m.ID, domain.ErrNegativeDistance)
	}
	return mod, nil
}

func MapActionsToOutput(actions []domain.Action) []ActionOutput {
	out := make([]ActionOutput, 0, len(actions))
	for _, a := range actions {
		out = append(out, ActionOutput{
			Who:    string(a.Who),
			Type:   string(a.Type),
			Amount: a.Amount,
		})
	}
	return out
}

func MapSettlementToPriceOutput(s *pricing.Settlement) RentalPriceOutput {
	return RentalPriceOutput{
		ID:    s.RentalID,
		Price: s.Price,
	}
}

func MapSettlementToCommissionOutput(s *pricing.Settlement) RentalCommissionOutput {
	return RentalCommissionOutput{
		ID:    s.RentalID,
		Price: s.Price,
		Options: OptionsOutput{
			DeductibleReduction: s.DeductibleReductionFee,
		},
		Commission: CommissionOutput{
			InsuranceFee:  s.InsuranceFee,
			AssistanceFee: s.AssistanceFee,
			DrivyFee:      s.PlatformFee,
		},
	}
}

func MapSettlementToActionsOutput(s *pricing.Settlement) RentalActionsOutput {
	return RentalActionsOutput{
		ID:      s.RentalID,
		Actions: MapActionsToOutput(s.Actions()),
	}
}

func MapDeltaToOutput(d *pricing.ModificationDelta) ModificationOutput {
	return ModificationOutput{
		ID:       d.ModificationID,
		RentalID: d.RentalID,
		Actions:  MapActionsToOutput(d.Actions()),
	}
}
