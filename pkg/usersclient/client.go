/**
 * @description
 * Client for the /api/v1/users resource group of the gateway.
 */
package usersclient

import (
	"context"
	"net/url"

	"github.com/Linkin89/performance-tests/internal/domain"
	"github.com/Linkin89/performance-tests/internal/fake"
	"github.com/Linkin89/performance-tests/pkg/gatewayhttp"
)

// CreateUserRequest is the payload for creating a user. Empty fields are
// filled with generated fake values before the request is sent.
type CreateUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	LastName    string `json:"lastName" validate:"required"`
	FirstName   string `json:"firstName" validate:"required"`
	MiddleName  string `json:"middleName" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

// CreateUserResponse is the gateway's response to a user-creation call.
type CreateUserResponse struct {
	User domain.User `json:"user"`
}

// GetUserResponse is the gateway's response to a user read.
type GetUserResponse struct {
	User domain.User `json:"user"`
}

// Client issues calls for the users resource. It is stateless across calls.
type Client struct {
	transport *gatewayhttp.Client
}

// NewClient creates a users resource client on top of an already-configured
// transport client.
func NewClient(transport *gatewayhttp.Client) *Client {
	return &Client{transport: transport}
}

// CreateUser creates a new user. Fields left empty on req are defaulted with
// fake data, so usersclient.CreateUserRequest{} creates a fully generated user.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*CreateUserResponse, error) {
	req.applyDefaults()

	var out CreateUserResponse
	if err := c.transport.Post(ctx, "/api/v1/users", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUser fetches a user by its identifier.
func (c *Client) GetUser(ctx context.Context, userID string) (*GetUserResponse, error) {
	if err := gatewayhttp.ValidateStruct(userPath{UserID: userID}); err != nil {
		return nil, err
	}

	var out GetUserResponse
	if err := c.transport.Get(ctx, "/api/v1/users/"+userID, url.Values{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type userPath struct {
	UserID string `validate:"required,uuid4"`
}

func (r *CreateUserRequest) applyDefaults() {
	if r.Email == "" {
		r.Email = fake.Email()
	}
	if r.LastName == "" {
		r.LastName = fake.LastName()
	}
	if r.FirstName == "" {
		r.FirstName = fake.FirstName()
	}
	if r.MiddleName == "" {
		r.MiddleName = fake.MiddleName()
	}
	if r.PhoneNumber == "" {
		r.PhoneNumber = fake.PhoneNumber()
	}
}
