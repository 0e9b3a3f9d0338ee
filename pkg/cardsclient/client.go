/**
 * @description
 * Client for the /api/v1/cards resource group of the gateway. Card issuing is
 * scoped to a user and an account the user already owns; the account must have
 * been opened before the issue call (enforced by call ordering in scenarios).
 */
package cardsclient

import (
	"context"

	"github.com/Linkin89/performance-tests/internal/domain"
	"github.com/Linkin89/performance-tests/pkg/gatewayhttp"
)

// IssueCardRequest is the shared payload for both issue-card endpoints.
type IssueCardRequest struct {
	UserID    string `json:"userId" validate:"required,uuid4"`
	AccountID string `json:"accountId" validate:"required,uuid4"`
}

// IssueCardResponse is the gateway's response to an issue-card call.
type IssueCardResponse struct {
	Card domain.Card `json:"card"`
}

// Client issues calls for the cards resource. It is stateless across calls.
type Client struct {
	transport *gatewayhttp.Client
}

// NewClient creates a cards resource client on top of an already-configured
// transport client.
func NewClient(transport *gatewayhttp.Client) *Client {
	return &Client{transport: transport}
}

// IssueVirtualCard issues a virtual card for the user against the account.
func (c *Client) IssueVirtualCard(ctx context.Context, userID, accountID string) (*IssueCardResponse, error) {
	return c.issue(ctx, "/api/v1/cards/issue-virtual-card", userID, accountID)
}

// IssuePhysicalCard issues a physical card for the user against the account.
func (c *Client) IssuePhysicalCard(ctx context.Context, userID, accountID string) (*IssueCardResponse, error) {
	return c.issue(ctx, "/api/v1/cards/issue-physical-card", userID, accountID)
}

func (c *Client) issue(ctx context.Context, path, userID, accountID string) (*IssueCardResponse, error) {
	var out IssueCardResponse
	if err := c.transport.Post(ctx, path, IssueCardRequest{UserID: userID, AccountID: accountID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
