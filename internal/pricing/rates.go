package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tier is a discount period. Every rental day numbered StartDay or later,
// up to the next tier's StartDay, gets Percent off the daily price.
type Tier struct {
	StartDay int64
	Percent  int64
}

// Rates holds the marketplace's commercial parameters. Money is in cents.
type Rates struct {
	CommissionRate                 decimal.Decimal
	InsuranceShare                 decimal.Decimal
	AssistanceFeePerDayCents       int64
	DeductibleReductionPerDayCents int64
	Discounts                      Schedule
}

// DefaultRates returns the production pricing: 30% commission, half of it
// to the insurance, 1 EUR/day roadside assistance, 4 EUR/day deductible
// reduction and the 10/30/50% time-decay discount.
func DefaultRates() Rates {
	return Rates{
		CommissionRate:                 decimal.RequireFromString("0.30"),
		InsuranceShare:                 decimal.RequireFromString("0.50"),
		AssistanceFeePerDayCents:       100,
		DeductibleReductionPerDayCents: 400,
		Discounts:                      DefaultSchedule(),
	}
}

// Validate checks that the rates describe a coherent commission split.
func (r Rates) Validate() error {
	one := decimal.NewFromInt(1)
	if r.CommissionRate.IsNegative() || r.CommissionRate.GreaterThan(one) {
		return fmt.Errorf("commission rate must be between 0 and 1, got %s", r.CommissionRate)
	}
	if r.InsuranceShare.IsNegative() || r.InsuranceShare.GreaterThan(one) {
		return fmt.Errorf("insurance share must be between 0 and 1, got %s", r.InsuranceShare)
	}
	if r.AssistanceFeePerDayCents < 0 {
		return fmt.Errorf("assistance fee cannot be negative: %d", r.AssistanceFeePerDayCents)
	}
	if r.DeductibleReductionPerDayCents < 0 {
		return fmt.Errorf("deductible reduction fee cannot be negative: %d", r.DeductibleReductionPerDayCents)
	}
	return r.Discounts.Validate()
}
