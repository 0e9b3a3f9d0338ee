package documentsclient

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Linkin89/performance-tests/internal/gatewaytest"
	"github.com/Linkin89/performance-tests/pkg/accountsclient"
	"github.com/Linkin89/performance-tests/pkg/gatewayhttp"
	"github.com/Linkin89/performance-tests/pkg/usersclient"
)

func setup(t *testing.T) (*Client, string) {
	t.Helper()
	server := httptest.NewServer(gatewaytest.NewGateway().Handler())
	t.Cleanup(server.Close)
	transport := gatewayhttp.NewClient(server.URL, "")
	ctx := context.Background()

	user, err := usersclient.NewClient(transport).CreateUser(ctx, usersclient.CreateUserRequest{})
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	account, err := accountsclient.NewClient(transport).OpenCreditCardAccount(ctx, user.User.ID)
	if err != nil {
		t.Fatalf("open account failed: %v", err)
	}
	return NewClient(transport), account.Account.ID
}

func TestGetTariffDocument(t *testing.T) {
	docs, accountID := setup(t)

	resp, err := docs.GetTariffDocument(context.Background(), accountID)
	if err != nil {
		t.Fatalf("get tariff failed: %v", err)
	}
	if !strings.Contains(resp.Tariff.URL, accountID) {
		t.Fatalf("expected tariff url scoped to account, got %q", resp.Tariff.URL)
	}
	if resp.Tariff.Document == "" {
		t.Fatal("expected embedded document payload")
	}
}

func TestGetContractDocument(t *testing.T) {
	docs, accountID := setup(t)

	resp, err := docs.GetContractDocument(context.Background(), accountID)
	if err != nil {
		t.Fatalf("get contract failed: %v", err)
	}
	if !strings.Contains(resp.Contract.URL, accountID) {
		t.Fatalf("expected contract url scoped to account, got %q", resp.Contract.URL)
	}
	if resp.Contract.Document == "" {
		t.Fatal("expected embedded document payload")
	}
}
