package document

import (
	"encoding/json"
	"fmt"
	"io"
)

// Input is the document a batch reads.
type Input struct {
	Cars                []CarInput          `json:"cars"`
	Rentals             []RentalInput       `json:"rentals"`
	RentalModifications []ModificationInput `json:"rental_modifications,omitempty"`
}

type CarInput struct {
	ID          int64 `json:"id"`
	PricePerDay int64 `json:"price_per_day"`
	PricePerKm  int64 `json:"price_per_km"`
}

type RentalInput struct {
	ID                  int64  `json:"id"`
	CarID               int64  `json:"car_id"`
	StartDate           string `json:"start_date"`
	EndDate             string `json:"end_date"`
	Distance            int64  `json:"distance"`
	DeductibleReduction bool   `json:"deductible_reduction,omitempty"`
}

// ModificationInput fields left out of the document are nil and keep the
// rental's value.
type ModificationInput struct {
	ID        int64   `json:"id"`
	RentalID  int64   `json:"rental_id"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Distance  *int64  `json:"distance,omitempty"`
}

// HasModifications reports whether the document carries modifications.
func (in *Input) HasModifications() bool {
	return in.RentalModifications != nil
}

// Decode reads an input document.
func Decode(r io.Reader) (*Input, error) {
	var in Input
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("failed to parse input document: %w", err)
	}
	return &in, nil
}
