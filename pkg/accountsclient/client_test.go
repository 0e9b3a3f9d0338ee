package accountsclient

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/Linkin89/performance-tests/internal/domain"
	"github.com/Linkin89/performance-tests/internal/gatewaytest"
	"github.com/Linkin89/performance-tests/pkg/gatewayhttp"
	"github.com/Linkin89/performance-tests/pkg/usersclient"
)

func newTestClients(t *testing.T) (*Client, *usersclient.Client) {
	t.Helper()
	server := httptest.NewServer(gatewaytest.NewGateway().Handler())
	t.Cleanup(server.Close)
	transport := gatewayhttp.NewClient(server.URL, "")
	return NewClient(transport), usersclient.NewClient(transport)
}

func createUser(t *testing.T, users *usersclient.Client) string {
	t.Helper()
	resp, err := users.CreateUser(context.Background(), usersclient.CreateUserRequest{})
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return resp.User.ID
}

func TestOpenAccountTypes(t *testing.T) {
	accounts, users := newTestClients(t)
	ctx := context.Background()
	userID := createUser(t, users)

	tests := []struct {
		name     string
		open     func() (*OpenAccountResponse, error)
		wantType domain.AccountType
		hasCards bool
	}{
		{
			name:     "deposit",
			open:     func() (*OpenAccountResponse, error) { return accounts.OpenDepositAccount(ctx, userID) },
			wantType: domain.AccountTypeDeposit,
		},
		{
			name:     "savings",
			open:     func() (*OpenAccountResponse, error) { return accounts.OpenSavingsAccount(ctx, userID) },
			wantType: domain.AccountTypeSavings,
		},
		{
			name:     "debit card",
			open:     func() (*OpenAccountResponse, error) { return accounts.OpenDebitCardAccount(ctx, userID) },
			wantType: domain.AccountTypeDebitCard,
			hasCards: true,
		},
		{
			name:     "credit card",
			open:     func() (*OpenAccountResponse, error) { return accounts.OpenCreditCardAccount(ctx, userID) },
			wantType: domain.AccountTypeCreditCard,
			hasCards: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := tt.open()
			if err != nil {
				t.Fatalf("open account failed: %v", err)
			}
			if resp.Account.ID == "" {
				t.Fatal("expected service-assigned account id")
			}
			if resp.Account.Type != tt.wantType {
				t.Fatalf("expected type %q, got %q", tt.wantType, resp.Account.Type)
			}
			if resp.Account.Status != domain.AccountStatusActive {
				t.Fatalf("expected active status, got %q", resp.Account.Status)
			}
			if tt.hasCards && len(resp.Account.Cards) == 0 {
				t.Fatal("expected card-backed account to carry cards")
			}
		})
	}
}

func TestGetAccountsListsOpenedAccounts(t *testing.T) {
	accounts, users := newTestClients(t)
	ctx := context.Background()
	userID := createUser(t, users)

	if _, err := accounts.OpenDepositAccount(ctx, userID); err != nil {
		t.Fatalf("open deposit failed: %v", err)
	}
	if _, err := accounts.OpenSavingsAccount(ctx, userID); err != nil {
		t.Fatalf("open savings failed: %v", err)
	}

	resp, err := accounts.GetAccounts(ctx, userID)
	if err != nil {
		t.Fatalf("get accounts failed: %v", err)
	}
	if len(resp.Accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(resp.Accounts))
	}
}
