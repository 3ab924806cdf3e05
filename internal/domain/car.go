package domain

// Car is the supply side of the marketplace. Prices are in cents.
type Car struct {
	ID               int64 `json:"id"`
	PricePerDayCents int64 `json:"price_per_day"`
	PricePerKmCents  int64 `json:"price_per_km"`
}
