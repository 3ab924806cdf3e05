package domain

import "time"

// DateLayout is the calendar date format used on the wire.
const DateLayout = "2006-01-02"

// Rental is the demand side of the marketplace. StartDate and EndDate are
// UTC calendar dates and both days are billed.
type Rental struct {
	ID                  int64     `json:"id"`
	CarID               int64     `json:"car_id"`
	StartDate           time.Time `json:"start_date"`
	EndDate             time.Time `json:"end_date"`
	Distance            int64     `json:"distance"`
	DeductibleReduction bool      `json:"deductible_reduction"`
}

// Duration returns the inclusive number of days between StartDate and
// EndDate. It is zero or negative when the period is inverted.
func (r *Rental) Duration() int64 {
	return int64(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}

// Validate checks the rental invariants.
func (r *Rental) Validate() error {
	if r.EndDate.Before(r.StartDate) {
		return ErrInvalidPeriod
	}
	if r.Distance < 0 {
		return ErrNegativeDistance
	}
	return nil
}

// RentalModification describes a later change to a rental. Nil fields keep
// the original rental's value.
type RentalModification struct {
	ID        int64      `json:"id"`
	RentalID  int64      `json:"rental_id"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Distance  *int64     `json:"distance,omitempty"`
}

// Apply returns a copy of original with the modification's overrides. The
// car and the deductible reduction option are never modified.
func (m *RentalModification) Apply(original *Rental) *Rental {
	modified := *original
	if m.StartDate != nil {
		modified.StartDate = *m.StartDate
	}
	if m.EndDate != nil {
		modified.EndDate = *m.EndDate
	}
	if m.Distance != nil {
		modified.Distance = *m.Distance
	}
	return &modified
}
