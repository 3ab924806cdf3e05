package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carshare-settlement/internal/domain"
)

func date(s string) time.Time {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func rentalOf(days int, distance int64, deductible bool) *domain.Rental {
	start := date("2015-07-03")
	return &domain.Rental{
		ID:                  1,
		CarID:               1,
		StartDate:           start,
		EndDate:             start.AddDate(0, 0, days-1),
		Distance:            distance,
		DeductibleReduction: deductible,
	}
}

var car = &domain.Car{ID: 1, PricePerDayCents: 2000, PricePerKmCents: 10}

func TestCalculator_Quote(t *testing.T) {
	calc := NewCalculator(DefaultRates())

	t.Run("One day", func(t *testing.T) {
		q, err := calc.Quote(rentalOf(1, 100, false), car)
		require.NoError(t, err)
		assert.Equal(t, int64(1), q.Duration)
		assert.Equal(t, int64(2000), q.TimeComponent)
		assert.Equal(t, int64(1000), q.DistanceComponent)
		assert.Equal(t, int64(3000), q.Price)
		assert.Equal(t, int64(0), q.DeductibleReductionFee)
	})

	t.Run("Two days across a month boundary", func(t *testing.T) {
		r := &domain.Rental{ID: 2, StartDate: date("2015-03-31"), EndDate: date("2015-04-01"), Distance: 300}
		q, err := calc.Quote(r, car)
		require.NoError(t, err)
		assert.Equal(t, int64(2), q.Duration)
		assert.Equal(t, int64(3800), q.TimeComponent)
		assert.Equal(t, int64(6800), q.Price)
	})

	t.Run("Eleven days reaches the third tier", func(t *testing.T) {
		q, err := calc.Quote(rentalOf(11, 100, false), car)
		require.NoError(t, err)
		// 2000 + 3*1800 + 6*1400 + 1*1000
		assert.Equal(t, int64(16800), q.TimeComponent)
		assert.Equal(t, int64(17800), q.Price)
	})

	t.Run("Truncates to whole cents", func(t *testing.T) {
		c := &domain.Car{ID: 2, PricePerDayCents: 1999, PricePerKmCents: 0}
		q, err := calc.Quote(rentalOf(3, 0, false), c)
		require.NoError(t, err)
		// 1999 * 2.8 = 5597.2
		assert.Equal(t, int64(5597), q.TimeComponent)
	})

	t.Run("Truncates the floating point product on long rentals", func(t *testing.T) {
		tests := []struct {
			days        int
			pricePerDay int64
			expected    int64
		}{
			{14, 2000, 19799},
			{21, 2000, 26799},
			{23, 2000, 28799},
			{14, 1000, 9899},
			{15, 2000, 20800},
		}
		for _, tt := range tests {
			c := &domain.Car{ID: 3, PricePerDayCents: tt.pricePerDay}
			q, err := calc.Quote(rentalOf(tt.days, 0, false), c)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, q.TimeComponent, "%d days at %d", tt.days, tt.pricePerDay)
		}
	})

	t.Run("Deductible reduction", func(t *testing.T) {
		q, err := calc.Quote(rentalOf(12, 1000, true), car)
		require.NoError(t, err)
		assert.Equal(t, int64(17800), q.TimeComponent)
		assert.Equal(t, int64(27800), q.Price)
		assert.Equal(t, int64(4800), q.DeductibleReductionFee)
	})

	t.Run("End before start", func(t *testing.T) {
		r := &domain.Rental{ID: 9, StartDate: date("2015-07-10"), EndDate: date("2015-07-03")}
		_, err := calc.Quote(r, car)
		assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
		assert.Contains(t, err.Error(), "rental 9")
	})

	t.Run("Negative distance", func(t *testing.T) {
		_, err := calc.Quote(rentalOf(1, -5, false), car)
		assert.ErrorIs(t, err, domain.ErrNegativeDistance)
	})

	t.Run("Components add up to the price", func(t *testing.T) {
		for days := 1; days <= 60; days++ {
			for _, distance := range []int64{0, 1, 77, 1000} {
				q, err := calc.Quote(rentalOf(days, distance, days%2 == 0), car)
				require.NoError(t, err)
				assert.Equal(t, q.Price, q.TimeComponent+q.DistanceComponent)
			}
		}
	})
}

func TestCalculator_Commission(t *testing.T) {
	calc := NewCalculator(DefaultRates())

	t.Run("One day example", func(t *testing.T) {
		c := calc.Commission(3000, 1)
		assert.Equal(t, int64(900), c.Total)
		assert.Equal(t, int64(450), c.InsuranceFee)
		assert.Equal(t, int64(100), c.AssistanceFee)
		assert.Equal(t, int64(350), c.PlatformFee)
	})

	t.Run("Rounds half away from zero", func(t *testing.T) {
		c := calc.Commission(5, 1)
		assert.Equal(t, int64(2), c.Total)        // 1.5
		assert.Equal(t, int64(1), c.InsuranceFee) // 0.75
	})

	t.Run("Platform fee is the residual", func(t *testing.T) {
		c := calc.Commission(10, 1)
		assert.Equal(t, int64(3), c.Total)
		assert.Equal(t, int64(2), c.InsuranceFee) // 1.5
		assert.Equal(t, int64(-99), c.PlatformFee)
	})

	t.Run("Fee conservation", func(t *testing.T) {
		for price := int64(0); price <= 5000; price += 7 {
			for duration := int64(1); duration <= 15; duration++ {
				c := calc.Commission(price, duration)
				assert.Equal(t, c.Total, c.InsuranceFee+c.AssistanceFee+c.PlatformFee)
			}
		}
	})
}
