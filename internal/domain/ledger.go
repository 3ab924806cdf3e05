package domain

// Party is a stakeholder receiving or paying money for a rental.
type Party string

const (
	PartyDriver     Party = "driver"
	PartyOwner      Party = "owner"
	PartyInsurance  Party = "insurance"
	PartyAssistance Party = "assistance"
	PartyPlatform   Party = "drivy"
)

// Parties lists every party in the order actions are emitted.
var Parties = []Party{PartyDriver, PartyOwner, PartyInsurance, PartyAssistance, PartyPlatform}

// ActionType is the direction of an action for the party it names.
type ActionType string

const (
	ActionCredit ActionType = "credit"
	ActionDebit  ActionType = "debit"
)

// Action is how much money must be credited to or debited from a party.
type Action struct {
	Who    Party      `json:"who"`
	Type   ActionType `json:"type"`
	Amount int64      `json:"amount"` // always >= 0
}

// NewAction converts a signed amount into an action. Only strictly positive
// amounts are credits, so a zero amount is a debit of 0.
func NewAction(who Party, amount int64) Action {
	action := Action{Who: who, Type: ActionDebit, Amount: -amount}
	if amount > 0 {
		action.Type = ActionCredit
		action.Amount = amount
	}
	return action
}

// Signed returns the action as a signed amount, positive for credits.
func (a Action) Signed() int64 {
	if a.Type == ActionCredit {
		return a.Amount
	}
	return -a.Amount
}
