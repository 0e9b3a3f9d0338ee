/**
 * @description
 * Client for the /api/v1/accounts resource group of the gateway. Each open-*
 * method hits its own type-specific endpoint; the gateway decides the account
 * identifier, initial status and card list.
 */
package accountsclient

import (
	"context"
	"net/url"

	"github.com/Linkin89/performance-tests/internal/domain"
	"github.com/Linkin89/performance-tests/pkg/gatewayhttp"
)

// OpenAccountRequest is the shared payload for every open-account endpoint.
type OpenAccountRequest struct {
	UserID string `json:"userId" validate:"required,uuid4"`
}

// OpenAccountResponse is the gateway's response to an open-account call.
type OpenAccountResponse struct {
	Account domain.Account `json:"account"`
}

// GetAccountsResponse is the gateway's response to an account listing.
type GetAccountsResponse struct {
	Accounts []domain.Account `json:"accounts" validate:"dive"`
}

// Client issues calls for the accounts resource. It is stateless across calls.
type Client struct {
	transport *gatewayhttp.Client
}

// NewClient creates an accounts resource client on top of an
// already-configured transport client.
func NewClient(transport *gatewayhttp.Client) *Client {
	return &Client{transport: transport}
}

// GetAccounts lists all accounts belonging to a user.
func (c *Client) GetAccounts(ctx context.Context, userID string) (*GetAccountsResponse, error) {
	query := accountsQuery{UserID: userID}
	if err := gatewayhttp.ValidateStruct(query); err != nil {
		return nil, err
	}

	var out GetAccountsResponse
	if err := c.transport.Get(ctx, "/api/v1/accounts", url.Values{"userId": {userID}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OpenDepositAccount opens a deposit account for the user.
func (c *Client) OpenDepositAccount(ctx context.Context, userID string) (*OpenAccountResponse, error) {
	return c.open(ctx, "/api/v1/accounts/open-deposit-account", userID)
}

// OpenSavingsAccount opens a savings account for the user.
func (c *Client) OpenSavingsAccount(ctx context.Context, userID string) (*OpenAccountResponse, error) {
	return c.open(ctx, "/api/v1/accounts/open-savings-account", userID)
}

// OpenDebitCardAccount opens a debit-card account for the user.
func (c *Client) OpenDebitCardAccount(ctx context.Context, userID string) (*OpenAccountResponse, error) {
	return c.open(ctx, "/api/v1/accounts/open-debit-card-account", userID)
}

// OpenCreditCardAccount opens a credit-card account for the user.
func (c *Client) OpenCreditCardAccount(ctx context.Context, userID string) (*OpenAccountResponse, error) {
	return c.open(ctx, "/api/v1/accounts/open-credit-card-account", userID)
}

func (c *Client) open(ctx context.Context, path, userID string) (*OpenAccountResponse, error) {
	var out OpenAccountResponse
	if err := c.transport.Post(ctx, path, OpenAccountRequest{UserID: userID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type accountsQuery struct {
	UserID string `validate:"required,uuid4"`
}
