package domain

import "time"

// Operation represents a single money movement on an account. Category is
// free text and only populated for purchases.
type Operation struct {
	ID        string          `json:"id" validate:"required,uuid4"`
	Type      OperationType   `json:"type" validate:"required"`
	Status    OperationStatus `json:"status" validate:"required"`
	Amount    float64         `json:"amount"`
	CardID    string          `json:"cardId" validate:"required,uuid4"`
	Category  string          `json:"category"`
	CreatedAt time.Time       `json:"createdAt"`
	AccountID string          `json:"accountId" validate:"required,uuid4"`
}

// OperationReceipt is the printable receipt for one operation.
type OperationReceipt struct {
	URL      string `json:"url" validate:"required,url"`
	Document string `json:"document" validate:"required"`
}

// OperationsSummary aggregates operation totals for one account.
type OperationsSummary struct {
	SpentAmount    float64 `json:"spentAmount"`
	ReceivedAmount float64 `json:"receivedAmount"`
	CashbackAmount float64 `json:"cashbackAmount"`
}
