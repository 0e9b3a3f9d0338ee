/**
 * @description
 * Client for the tariff/contract document endpoints of the gateway. Documents
 * are read-only and fetched per account.
 */
package documentsclient

import (
	"context"
	"net/url"

	"github.com/Linkin89/performance-tests/internal/domain"
	"github.com/Linkin89/performance-tests/pkg/gatewayhttp"
)

// GetTariffDocumentResponse is the gateway's response to a tariff read.
type GetTariffDocumentResponse struct {
	Tariff domain.Document `json:"tariff"`
}

// GetContractDocumentResponse is the gateway's response to a contract read.
type GetContractDocumentResponse struct {
	Contract domain.Document `json:"contract"`
}

// Client issues calls for the documents resource. It is stateless across calls.
type Client struct {
	transport *gatewayhttp.Client
}

// NewClient creates a documents resource client on top of an
// already-configured transport client.
func NewClient(transport *gatewayhttp.Client) *Client {
	return &Client{transport: transport}
}

// GetTariffDocument fetches the tariff document for an account.
func (c *Client) GetTariffDocument(ctx context.Context, accountID string) (*GetTariffDocumentResponse, error) {
	if err := gatewayhttp.ValidateStruct(documentPath{AccountID: accountID}); err != nil {
		return nil, err
	}

	var out GetTariffDocumentResponse
	if err := c.transport.Get(ctx, "/api/v1/documents/tariff-document/"+accountID, url.Values{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetContractDocument fetches the contract document for an account.
func (c *Client) GetContractDocument(ctx context.Context, accountID string) (*GetContractDocumentResponse, error) {
	if err := gatewayhttp.ValidateStruct(documentPath{AccountID: accountID}); err != nil {
		return nil, err
	}

	var out GetContractDocumentResponse
	if err := c.transport.Get(ctx, "/api/v1/documents/contract-document/"+accountID, url.Values{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type documentPath struct {
	AccountID string `validate:"required,uuid4"`
}
