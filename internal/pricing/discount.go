package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Schedule is the decreasing pricing for longer rentals, ordered by StartDay.
type Schedule []Tier

// DefaultSchedule gives 10% off from day 2, 30% off from day 5 and 50% off
// from day 11.
func DefaultSchedule() Schedule {
	return Schedule{
		{StartDay: 2, Percent: 10},
		{StartDay: 5, Percent: 30},
		{StartDay: 11, Percent: 50},
	}
}

// Validate checks that tiers start after day 1, in strictly increasing order,
// with percentages between 0 and 100.
func (s Schedule) Validate() error {
	prev := int64(1)
	for i, tier := range s {
		if tier.StartDay <= prev {
			return fmt.Errorf("discount tier %d must start after day %d, got %d", i, prev, tier.StartDay)
		}
		if tier.Percent < 0 || tier.Percent > 100 {
			return fmt.Errorf("discount tier %d percent must be between 0 and 100, got %d", i, tier.Percent)
		}
		prev = tier.StartDay
	}
	return nil
}

// TierSum returns the sum of the discount percent of every day of a rental
// of the given duration.
func (s Schedule) TierSum(duration int64) int64 {
	var sum int64
	for i, tier := range s {
		days := max(duration-(tier.StartDay-1), 0)
		if i+1 < len(s) {
			days = min(days, s[i+1].StartDay-tier.StartDay)
		}
		sum += days * tier.Percent
	}
	return sum
}

// DiscountPercent is the weighted average of the daily discounts across the
// rental duration, applied uniformly to every day (0 <= discount < 100).
func (s Schedule) DiscountPercent(duration int64) decimal.Decimal {
	if duration < 1 {
		return decimal.Zero
	}
	return decimal.NewFromInt(s.TierSum(duration)).Div(decimal.NewFromInt(duration))
}
