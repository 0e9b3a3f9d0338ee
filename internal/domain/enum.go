/**
 * @description
 * Closed string enumerations shared between request and response schemas.
 * Each enum rejects unrecognized wire values during JSON decoding instead of
 * passing them through as raw strings, and exposes its declared value set for
 * the fake-data provider.
 */
package domain

import (
	"encoding/json"
	"fmt"
)

func decodeEnum[T ~string](data []byte, kind string, allowed []T) (T, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("%s must be a string: %w", kind, err)
	}
	for _, v := range allowed {
		if T(s) == v {
			return T(s), nil
		}
	}
	return "", fmt.Errorf("%s: value %q is not in the closed set %v", kind, s, allowed)
}

// AccountType is the fixed set of account kinds the gateway can open.
type AccountType string

const (
	AccountTypeDebitCard  AccountType = "DEBIT_CARD"
	AccountTypeCreditCard AccountType = "CREDIT_CARD"
	AccountTypeDeposit    AccountType = "DEPOSIT"
	AccountTypeSavings    AccountType = "SAVINGS"
)

// AccountTypes lists the declared values of AccountType.
func AccountTypes() []AccountType {
	return []AccountType{AccountTypeDebitCard, AccountTypeCreditCard, AccountTypeDeposit, AccountTypeSavings}
}

func (t *AccountType) UnmarshalJSON(data []byte) error {
	v, err := decodeEnum(data, "account type", AccountTypes())
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// AccountStatus is the fixed set of account lifecycle states.
type AccountStatus string

const (
	AccountStatusActive         AccountStatus = "ACTIVE"
	AccountStatusPendingClosure AccountStatus = "PENDING_CLOSURE"
	AccountStatusClosed         AccountStatus = "CLOSED"
)

// AccountStatuses lists the declared values of AccountStatus.
func AccountStatuses() []AccountStatus {
	return []AccountStatus{AccountStatusActive, AccountStatusPendingClosure, AccountStatusClosed}
}

func (s *AccountStatus) UnmarshalJSON(data []byte) error {
	v, err := decodeEnum(data, "account status", AccountStatuses())
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// CardType distinguishes virtual and physical cards.
type CardType string

const (
	CardTypeVirtual  CardType = "VIRTUAL"
	CardTypePhysical CardType = "PHYSICAL"
)

// CardTypes lists the declared values of CardType.
func CardTypes() []CardType {
	return []CardType{CardTypeVirtual, CardTypePhysical}
}

func (t *CardType) UnmarshalJSON(data []byte) error {
	v, err := decodeEnum(data, "card type", CardTypes())
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// CardStatus is the fixed set of card lifecycle states.
type CardStatus string

const (
	CardStatusActive  CardStatus = "ACTIVE"
	CardStatusFrozen  CardStatus = "FROZEN"
	CardStatusClosed  CardStatus = "CLOSED"
	CardStatusBlocked CardStatus = "BLOCKED"
)

// CardStatuses lists the declared values of CardStatus.
func CardStatuses() []CardStatus {
	return []CardStatus{CardStatusActive, CardStatusFrozen, CardStatusClosed, CardStatusBlocked}
}

func (s *CardStatus) UnmarshalJSON(data []byte) error {
	v, err := decodeEnum(data, "card status", CardStatuses())
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// CardPaymentSystem is the payment network a card belongs to.
type CardPaymentSystem string

const (
	CardPaymentSystemMastercard CardPaymentSystem = "MASTERCARD"
	CardPaymentSystemVisa       CardPaymentSystem = "VISA"
)

// CardPaymentSystems lists the declared values of CardPaymentSystem.
func CardPaymentSystems() []CardPaymentSystem {
	return []CardPaymentSystem{CardPaymentSystemMastercard, CardPaymentSystemVisa}
}

func (p *CardPaymentSystem) UnmarshalJSON(data []byte) error {
	v, err := decodeEnum(data, "card payment system", CardPaymentSystems())
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// OperationType is the fixed set of money-movement operation kinds.
type OperationType string

const (
	OperationTypeFee            OperationType = "FEE"
	OperationTypeTopUp          OperationType = "TOP_UP"
	OperationTypePurchase       OperationType = "PURCHASE"
	OperationTypeCashback       OperationType = "CASHBACK"
	OperationTypeTransfer       OperationType = "TRANSFER"
	OperationTypeBillPayment    OperationType = "BILL_PAYMENT"
	OperationTypeCashWithdrawal OperationType = "CASH_WITHDRAWAL"
)

// OperationTypes lists the declared values of OperationType.
func OperationTypes() []OperationType {
	return []OperationType{
		OperationTypeFee, OperationTypeTopUp, OperationTypePurchase,
		OperationTypeCashback, OperationTypeTransfer, OperationTypeBillPayment,
		OperationTypeCashWithdrawal,
	}
}

func (t *OperationType) UnmarshalJSON(data []byte) error {
	v, err := decodeEnum(data, "operation type", OperationTypes())
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// OperationStatus is the fixed set of operation processing states.
type OperationStatus string

const (
	OperationStatusFailed      OperationStatus = "FAILED"
	OperationStatusCompleted   OperationStatus = "COMPLETED"
	OperationStatusInProgress  OperationStatus = "IN_PROGRESS"
	OperationStatusUnspecified OperationStatus = "UNSPECIFIED"
)

// OperationStatuses lists the declared values of OperationStatus.
func OperationStatuses() []OperationStatus {
	return []OperationStatus{
		OperationStatusFailed, OperationStatusCompleted,
		OperationStatusInProgress, OperationStatusUnspecified,
	}
}

func (s *OperationStatus) UnmarshalJSON(data []byte) error {
	v, err := decodeEnum(data, "operation status", OperationStatuses())
	if err != nil {
		return err
	}
	*s = v
	return nil
}
