package domain

// Account represents a gateway account. The identifier and the card list are
// populated by the remote service on the open-account call.
type Account struct {
	ID      string        `json:"id" validate:"required,uuid4"`
	Type    AccountType   `json:"type" validate:"required"`
	Cards   []Card        `json:"cards" validate:"dive"`
	Status  AccountStatus `json:"status" validate:"required"`
	Balance float64       `json:"balance"`
}
