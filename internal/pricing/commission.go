package pricing

import "github.com/shopspring/decimal"

// Commission is the part of the price kept by the marketplace, split
// between the insurance, the roadside assistance and the platform.
type Commission struct {
	Total         int64
	InsuranceFee  int64
	AssistanceFee int64
	PlatformFee   int64
}

// Commission allocates the fees of a rental price over duration days.
// The platform fee is the residual of the rounded commission, so the three
// fees always sum to Total.
func (c *Calculator) Commission(price, duration int64) Commission {
	total := roundCents(decimal.NewFromInt(price).Mul(c.rates.CommissionRate))
	insurance := roundCents(decimal.NewFromInt(price).Mul(c.rates.CommissionRate).Mul(c.rates.InsuranceShare))
	assistance := c.rates.AssistanceFeePerDayCents * duration
	return Commission{
		Total:         total,
		InsuranceFee:  insurance,
		AssistanceFee: assistance,
		PlatformFee:   total - insurance - assistance,
	}
}

// roundCents rounds half away from zero.
func roundCents(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
