package operationsclient

import (
	"context"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/Linkin89/performance-tests/internal/domain"
	"github.com/Linkin89/performance-tests/internal/fake"
	"github.com/Linkin89/performance-tests/internal/gatewaytest"
	"github.com/Linkin89/performance-tests/pkg/accountsclient"
	"github.com/Linkin89/performance-tests/pkg/gatewayhttp"
	"github.com/Linkin89/performance-tests/pkg/usersclient"
)

func setup(t *testing.T) (*Client, string, string) {
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
	if len(account.Account.Cards) == 0 {
		t.Fatal("expected credit card account to carry a card")
	}
	return NewClient(transport), account.Account.Cards[0].ID, account.Account.ID
}

func TestMakeOperationsHitTheirOwnEndpoints(t *testing.T) {
	ops, cardID, accountID := setup(t)
	ctx := context.Background()

	tests := []struct {
		wantType domain.OperationType
		make     func() (*MakeOperationResponse, error)
	}{
		{domain.OperationTypeFee, func() (*MakeOperationResponse, error) { return ops.MakeFeeOperation(ctx, cardID, accountID) }},
		{domain.OperationTypeTopUp, func() (*MakeOperationResponse, error) { return ops.MakeTopUpOperation(ctx, cardID, accountID) }},
		{domain.OperationTypeCashback, func() (*MakeOperationResponse, error) { return ops.MakeCashbackOperation(ctx, cardID, accountID) }},
		{domain.OperationTypeTransfer, func() (*MakeOperationResponse, error) { return ops.MakeTransferOperation(ctx, cardID, accountID) }},
		{domain.OperationTypeBillPayment, func() (*MakeOperationResponse, error) { return ops.MakeBillPaymentOperation(ctx, cardID, accountID) }},
		{domain.OperationTypeCashWithdrawal, func() (*MakeOperationResponse, error) { return ops.MakeCashWithdrawalOperation(ctx, cardID, accountID) }},
	}

	for _, tt := range tests {
		t.Run(string(tt.wantType), func(t *testing.T) {
			resp, err := tt.make()
			if err != nil {
				t.Fatalf("make operation failed: %v", err)
			}
			if resp.Operation.Type != tt.wantType {
				t.Fatalf("expected operation type %q, got %q", tt.wantType, resp.Operation.Type)
			}
			if resp.Operation.CardID != cardID || resp.Operation.AccountID != accountID {
				t.Fatalf("operation references wrong owners: %+v", resp.Operation)
			}
			if resp.Operation.Amount < 1 || resp.Operation.Amount > 100 {
				t.Fatalf("defaulted amount %v out of [1, 100]", resp.Operation.Amount)
			}
		})
	}
}

func TestMakePurchaseOperationDefaultsCategory(t *testing.T) {
	ops, cardID, accountID := setup(t)

	resp, err := ops.MakePurchaseOperation(context.Background(), cardID, accountID, "")
	if err != nil {
		t.Fatalf("make purchase failed: %v", err)
	}
	if resp.Operation.Type != domain.OperationTypePurchase {
		t.Fatalf("expected purchase, got %q", resp.Operation.Type)
	}
	if !slices.Contains(fake.Categories(), resp.Operation.Category) {
		t.Fatalf("defaulted category %q not in the closed list", resp.Operation.Category)
	}
}

func TestMakePurchaseOperationKeepsExplicitCategory(t *testing.T) {
	ops, cardID, accountID := setup(t)

	resp, err := ops.MakePurchaseOperation(context.Background(), cardID, accountID, "taxi")
	if err != nil {
		t.Fatalf("make purchase failed: %v", err)
	}
	if resp.Operation.Category != "taxi" {
		t.Fatalf("explicit category overwritten: %q", resp.Operation.Category)
	}
}

func TestOperationReads(t *testing.T) {
	ops, cardID, accountID := setup(t)
	ctx := context.Background()

	made, err := ops.MakePurchaseOperation(ctx, cardID, accountID, "travel")
	if err != nil {
		t.Fatalf("make purchase failed: %v", err)
	}

	got, err := ops.GetOperation(ctx, made.Operation.ID)
	if err != nil {
		t.Fatalf("get operation failed: %v", err)
	}
	if got.Operation.ID != made.Operation.ID {
		t.Fatalf("expected operation %q, got %q", made.Operation.ID, got.Operation.ID)
	}

	receipt, err := ops.GetOperationReceipt(ctx, made.Operation.ID)
	if err != nil {
		t.Fatalf("get receipt failed: %v", err)
	}
	if receipt.Receipt.URL == "" || receipt.Receipt.Document == "" {
		t.Fatalf("expected populated receipt, got %+v", receipt.Receipt)
	}

	list, err := ops.GetOperations(ctx, accountID)
	if err != nil {
		t.Fatalf("get operations failed: %v", err)
	}
	if len(list.Operations) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(list.Operations))
	}

	summary, err := ops.GetOperationsSummary(ctx, accountID)
	if err != nil {
		t.Fatalf("get summary failed: %v", err)
	}
	if summary.Summary.SpentAmount != made.Operation.Amount {
		t.Fatalf("expected spent %v, got %v", made.Operation.Amount, summary.Summary.SpentAmount)
	}
}
