package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"carshare-settlement/internal/domain"
)

// Calculator prices rentals and splits the money between the parties.
// It holds no state besides its rates and is safe to share.
type Calculator struct {
	rates Rates
}

func NewCalculator(rates Rates) *Calculator {
	return &Calculator{rates: rates}
}

// Rates returns the rates the calculator was built with.
func (c *Calculator) Rates() Rates {
	return c.rates
}

// Quote is the price of a rental split into its time and distance components.
type Quote struct {
	Duration               int64
	DiscountPercent        decimal.Decimal
	TimeComponent          int64
	DistanceComponent      int64
	Price                  int64
	DeductibleReductionFee int64
}

// Quote prices a rental with its car.
func (c *Calculator) Quote(rental *domain.Rental, car *domain.Car) (Quote, error) {
	if err := rental.Validate(); err != nil {
		return Quote{}, fmt.Errorf("rental %d: %w", rental.ID, err)
	}

	duration := rental.Duration()
	q := Quote{
		Duration:          duration,
		DiscountPercent:   c.rates.Discounts.DiscountPercent(duration),
		TimeComponent:     c.timeComponent(duration, car.PricePerDayCents),
		DistanceComponent: rental.Distance * car.PricePerKmCents,
	}
	q.Price = q.TimeComponent + q.DistanceComponent
	if rental.DeductibleReduction {
		q.DeductibleReductionFee = duration * c.rates.DeductibleReductionPerDayCents
	}
	return q, nil
}

// timeComponent applies the average discount to every day and truncates the
// float64 product to whole cents. The product can land just below a whole
// number: 14 days at 2000 gives 19799, not 19800.
func (c *Calculator) timeComponent(duration, pricePerDay int64) int64 {
	discount := float64(c.rates.Discounts.TierSum(duration)) / float64(duration)
	return int64(float64(duration*pricePerDay) * (1 - discount/100))
}
