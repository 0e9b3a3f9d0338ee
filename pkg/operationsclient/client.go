/**
 * @description
 * Client for the /api/v1/operations resource group of the gateway. Every
 * make-*-operation method posts to its own type-specific endpoint; status and
 * amount default to generated fake values, matching the exploratory nature of
 * the load scenarios.
 */
package operationsclient

import (
	"context"
	"net/url"

	"github.com/Linkin89/performance-tests/internal/domain"
	"github.com/Linkin89/performance-tests/internal/fake"
	"github.com/Linkin89/performance-tests/pkg/gatewayhttp"
)

// MakeOperationRequest is the shared payload for every make-operation endpoint.
type MakeOperationRequest struct {
	Status    domain.OperationStatus `json:"status" validate:"required"`
	Amount    float64                `json:"amount" validate:"required,gt=0"`
	CardID    string                 `json:"cardId" validate:"required,uuid4"`
	AccountID string                 `json:"accountId" validate:"required,uuid4"`
}

// MakePurchaseOperationRequest extends the shared payload with the purchase
// category, which the gateway requires for purchases.
type MakePurchaseOperationRequest struct {
	MakeOperationRequest
	Category string `json:"category" validate:"required"`
}

// MakeOperationResponse is the gateway's response to any make-operation call.
type MakeOperationResponse struct {
	Operation domain.Operation `json:"operation"`
}

// GetOperationResponse is the gateway's response to an operation read.
type GetOperationResponse struct {
	Operation domain.Operation `json:"operation"`
}

// GetOperationsResponse is the gateway's response to an operation listing.
type GetOperationsResponse struct {
	Operations []domain.Operation `json:"operations" validate:"dive"`
}

// GetOperationReceiptResponse is the gateway's response to a receipt read.
type GetOperationReceiptResponse struct {
	Receipt domain.OperationReceipt `json:"receipt"`
}

// GetOperationsSummaryResponse is the gateway's response to a summary query.
type GetOperationsSummaryResponse struct {
	Summary domain.OperationsSummary `json:"summary"`
}

// Client issues calls for the operations resource. It is stateless across calls.
type Client struct {
	transport *gatewayhttp.Client
}

// NewClient creates an operations resource client on top of an
// already-configured transport client.
func NewClient(transport *gatewayhttp.Client) *Client {
	return &Client{transport: transport}
}

// GetOperation fetches a single operation by its identifier.
func (c *Client) GetOperation(ctx context.Context, operationID string) (*GetOperationResponse, error) {
	if err := gatewayhttp.ValidateStruct(operationPath{OperationID: operationID}); err != nil {
		return nil, err
	}

	var out GetOperationResponse
	if err := c.transport.Get(ctx, "/api/v1/operations/"+operationID, url.Values{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOperationReceipt fetches the receipt for an operation.
func (c *Client) GetOperationReceipt(ctx context.Context, operationID string) (*GetOperationReceiptResponse, error) {
	if err := gatewayhttp.ValidateStruct(operationPath{OperationID: operationID}); err != nil {
		return nil, err
	}

	var out GetOperationReceiptResponse
	if err := c.transport.Get(ctx, "/api/v1/operations/operation-receipt/"+operationID, url.Values{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOperations lists the operations recorded against an account.
func (c *Client) GetOperations(ctx context.Context, accountID string) (*GetOperationsResponse, error) {
	if err := gatewayhttp.ValidateStruct(accountQuery{AccountID: accountID}); err != nil {
		return nil, err
	}

	var out GetOperationsResponse
	if err := c.transport.Get(ctx, "/api/v1/operations", url.Values{"accountId": {accountID}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOperationsSummary fetches aggregate operation totals for an account.
func (c *Client) GetOperationsSummary(ctx context.Context, accountID string) (*GetOperationsSummaryResponse, error) {
	if err := gatewayhttp.ValidateStruct(accountQuery{AccountID: accountID}); err != nil {
		return nil, err
	}

	var out GetOperationsSummaryResponse
	if err := c.transport.Get(ctx, "/api/v1/operations/operations-summary", url.Values{"accountId": {accountID}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MakeFeeOperation records a fee operation against the card and account.
func (c *Client) MakeFeeOperation(ctx context.Context, cardID, accountID string) (*MakeOperationResponse, error) {
	return c.make(ctx, "/api/v1/operations/make-fee-operation", cardID, accountID)
}

// MakeTopUpOperation records a top-up operation against the card and account.
func (c *Client) MakeTopUpOperation(ctx context.Context, cardID, accountID string) (*MakeOperationResponse, error) {
	return c.make(ctx, "/api/v1/operations/make-top-up-operation", cardID, accountID)
}

// MakeCashbackOperation records a cashback operation against the card and account.
func (c *Client) MakeCashbackOperation(ctx context.Context, cardID, accountID string) (*MakeOperationResponse, error) {
	return c.make(ctx, "/api/v1/operations/make-cashback-operation", cardID, accountID)
}

// MakeTransferOperation records a transfer operation against the card and account.
func (c *Client) MakeTransferOperation(ctx context.Context, cardID, accountID string) (*MakeOperationResponse, error) {
	return c.make(ctx, "/api/v1/operations/make-transfer-operation", cardID, accountID)
}

// MakeBillPaymentOperation records a bill-payment operation against the card and account.
func (c *Client) MakeBillPaymentOperation(ctx context.Context, cardID, accountID string) (*MakeOperationResponse, error) {
	return c.make(ctx, "/api/v1/operations/make-bill-payment-operation", cardID, accountID)
}

// MakeCashWithdrawalOperation records a cash-withdrawal operation against the card and account.
func (c *Client) MakeCashWithdrawalOperation(ctx context.Context, cardID, accountID string) (*MakeOperationResponse, error) {
	return c.make(ctx, "/api/v1/operations/make-cash-withdrawal-operation", cardID, accountID)
}

// MakePurchaseOperation records a purchase operation. An empty category is
// defaulted with a generated purchase category.
func (c *Client) MakePurchaseOperation(ctx context.Context, cardID, accountID, category string) (*MakeOperationResponse, error) {
	if category == "" {
		category = fake.Category()
	}
	req := MakePurchaseOperationRequest{
		MakeOperationRequest: newMakeOperationRequest(cardID, accountID),
		Category:             category,
	}

	var out MakeOperationResponse
	if err := c.transport.Post(ctx, "/api/v1/operations/make-purchase-operation", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) make(ctx context.Context, path, cardID, accountID string) (*MakeOperationResponse, error) {
	var out MakeOperationResponse
	if err := c.transport.Post(ctx, path, newMakeOperationRequest(cardID, accountID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func newMakeOperationRequest(cardID, accountID string) MakeOperationRequest {
	return MakeOperationRequest{
		Status:    fake.Enum(domain.OperationStatuses()),
		Amount:    fake.Amount(),
		CardID:    cardID,
		AccountID: accountID,
	}
}

type operationPath struct {
	OperationID string `validate:"required,uuid4"`
}

type accountQuery struct {
	AccountID string `validate:"required,uuid4"`
}
