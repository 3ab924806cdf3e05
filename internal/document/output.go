package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"carshare-settlement/internal/pricing"
)

// Mode selects the shape of the output document.
type Mode string

const (
	ModeAuto          Mode = "auto"
	ModePrice         Mode = "price"
	ModeCommission    Mode = "commission"
	ModeActions       Mode = "actions"
	ModeModifications Mode = "modifications"
)

var ErrUnknownMode = errors.New("unknown output mode")

// ParseMode validates a mode name. An empty name is ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModePrice, ModeCommission, ModeActions, ModeModifications:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Resolve turns ModeAuto into a concrete mode: modifications when the
// input carries rental_modifications, actions otherwise.
func (m Mode) Resolve(in *Input) Mode {
	if m != ModeAuto {
		return m
	}
	if in.HasModifications() {
		return ModeModifications
	}
	return ModeActions
}

// Output is the document a batch writes. Exactly one field is set.
type Output struct {
	Rentals             any `json:"rentals,omitempty"`
	RentalModifications any `json:"rental_modifications,omitempty"`
}

type RentalPriceOutput struct {
	ID    int64 `json:"id"`
	Price int64 `json:"price"`
}

type OptionsOutput struct {
	DeductibleReduction int64 `json:"deductible_reduction"`
}

type CommissionOutput struct {
	InsuranceFee  int64 `json:"insurance_fee"`
	AssistanceFee int64 `json:"assistance_fee"`
	DrivyFee      int64 `json:"drivy_fee"`
}

type RentalCommissionOutput struct {
	ID         int64            `json:"id"`
	Price      int64            `json:"price"`
	Options    OptionsOutput    `json:"options"`
	Commission CommissionOutput `json:"commission"`
}

type ActionOutput struct {
	Who    string `json:"who"`
	Type   string `json:"type"`
	Amount int64  `json:"amount"`
}

type RentalActionsOutput struct {
	ID      int64          `json:"id"`
	Actions []ActionOutput `json:"actions"`
}

type ModificationOutput struct {
	ID       int64          `json:"id"`
	RentalID int64          `json:"rental_id"`
	Actions  []ActionOutput `json:"actions"`
}

// BuildRentals renders settlements in a rental mode.
func BuildRentals(mode Mode, settlements []*pricing.Settlement) (*Output, error) {
	switch mode {
	case ModePrice:
		rentals := make([]RentalPriceOutput, 0, len(settlements))
		for _, s := range settlements {
			rentals = append(rentals, MapSettlementToPriceOutput(s))
		}
		return &Output{Rentals: rentals}, nil
	case ModeCommission:
		rentals := make([]RentalCommissionOutput, 0, len(settlements))
		for _, s := range settlements {
			rentals = append(rentals, MapSettlementToCommissionOutput(s))
		}
		return &Output{Rentals: rentals}, nil
	case ModeActions:
		rentals := make([]RentalActionsOutput, 0, len(settlements))
		for _, s := range settlements {
			rentals = append(rentals, MapSettlementToActionsOutput(s))
		}
		return &Output{Rentals: rentals}, nil
	default:
		return nil, fmt.Errorf("%w: %q is not a rental mode", ErrUnknownMode, mode)
	}
}

// BuildModifications renders modification deltas.
func BuildModifications(deltas []*pricing.ModificationDelta) *Output {
	mods := make([]ModificationOutput, 0, len(deltas))
	for _, d := range deltas {
		mods = append(mods, MapDeltaToOutput(d))
	}
	return &Output{RentalModifications: mods}
}

// Encode writes out as 2-space indented JSON followed by a newline.
func Encode(w io.Writer, out *Output) error {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output document: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
