package domain

// Card represents a payment card issued for a user against an account.
type Card struct {
	ID            string            `json:"id" validate:"required,uuid4"`
	PIN           string            `json:"pin" validate:"required"`
	CVV           string            `json:"cvv" validate:"required"`
	Type          CardType          `json:"type" validate:"required"`
	Status        CardStatus        `json:"status" validate:"required"`
	AccountID     string            `json:"accountId" validate:"required,uuid4"`
	CardNumber    string            `json:"cardNumber" validate:"required"`
	CardHolder    string            `json:"cardHolder" validate:"required"`
	ExpiryDate    string            `json:"expiryDate" validate:"required"`
	PaymentSystem CardPaymentSystem `json:"paymentSystem" validate:"required"`
}
