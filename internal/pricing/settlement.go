package pricing

import (
	"fmt"

	"carshare-settlement/internal/domain"
)

// Amounts are the signed money flows of the parties: positive when the
// party receives money, negative when it pays.
type Amounts struct {
	Driver     int64
	Owner      int64
	Insurance  int64
	Assistance int64
	Platform   int64
}

// Sum is zero for every balanced ledger.
func (a Amounts) Sum() int64 {
	return a.Driver + a.Owner + a.Insurance + a.Assistance + a.Platform
}

// Sub returns a - b party by party.
func (a Amounts) Sub(b Amounts) Amounts {
	return Amounts{
		Driver:     a.Driver - b.Driver,
		Owner:      a.Owner - b.Owner,
		Insurance:  a.Insurance - b.Insurance,
		Assistance: a.Assistance - b.Assistance,
		Platform:   a.Platform - b.Platform,
	}
}

// Of returns the amount of a single party.
func (a Amounts) Of(who domain.Party) int64 {
	switch who {
	case domain.PartyDriver:
		return a.Driver
	case domain.PartyOwner:
		return a.Owner
	case domain.PartyInsurance:
		return a.Insurance
	case domain.PartyAssistance:
		return a.Assistance
	case domain.PartyPlatform:
		return a.Platform
	default:
		return 0
	}
}

// Validate checks the zero-sum invariant.
func (a Amounts) Validate() error {
	if sum := a.Sum(); sum != 0 {
		return fmt.Errorf("%w: off by %d", domain.ErrUnbalancedLedger, sum)
	}
	return nil
}

// Actions converts the amounts into one action per party.
func (a Amounts) Actions() []domain.Action {
	actions := make([]domain.Action, 0, len(domain.Parties))
	for _, who := range domain.Parties {
		actions = append(actions, domain.NewAction(who, a.Of(who)))
	}
	return actions
}

// Settlement is every figure derived from a rental and its car. It is
// recomputed on demand and never cached.
type Settlement struct {
	RentalID int64
	Quote
	Commission
	Amounts Amounts
}

// Actions returns the debit/credit actions of the settlement.
func (s *Settlement) Actions() []domain.Action {
	return s.Amounts.Actions()
}

// Settle prices a rental and splits its money between the five parties.
func (c *Calculator) Settle(rental *domain.Rental, car *domain.Car) (*Settlement, error) {
	quote, err := c.Quote(rental, car)
	if err != nil {
		return nil, err
	}
	commission := c.Commission(quote.Price, quote.Duration)

	s := &Settlement{
		RentalID:   rental.ID,
		Quote:      quote,
		Commission: commission,
		Amounts: Amounts{
			Driver:     -(quote.Price + quote.DeductibleReductionFee),
			Owner:      quote.Price - commission.InsuranceFee - commission.AssistanceFee - commission.PlatformFee,
			Insurance:  commission.InsuranceFee,
			Assistance: commission.AssistanceFee,
			Platform:   commission.PlatformFee + quote.DeductibleReductionFee,
		},
	}
	if err := s.Amounts.Validate(); err != nil {
		return nil, fmt.Errorf("rental %d: %w", rental.ID, err)
	}
	return s, nil
}
