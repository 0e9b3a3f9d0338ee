/**
 * @description
 * Demo binary chaining resource-client calls into two short end-to-end flows:
 *
 *  1. create user -> open credit-card account -> fetch tariff and contract documents
 *  2. create user -> open debit-card account -> issue physical card
 *
 * Responses are printed as-is; any failure aborts the demo. With no
 * GATEWAY_API_BASE_URL configured it runs against an in-process fake gateway.
 */
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/joho/godotenv"

	"github.com/Linkin89/performance-tests/internal/config"
	"github.com/Linkin89/performance-tests/internal/gatewaytest"
	"github.com/Linkin89/performance-tests/internal/scenario"
	"github.com/Linkin89/performance-tests/pkg/gatewayhttp"
	"github.com/Linkin89/performance-tests/pkg/usersclient"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	baseURL := cfg.GatewayAPIBaseURL
	if baseURL == "" {
		fakeGateway := httptest.NewServer(gatewaytest.NewGateway().Handler())
		defer fakeGateway.Close()
		baseURL = fakeGateway.URL
		logger.Info("no gateway configured, using in-process fake gateway", "url", baseURL)
	}

	transport := gatewayhttp.NewClientWithHTTP(baseURL, cfg.GatewayAPIKey, &http.Client{
		Timeout: cfg.HTTPTimeout(),
	})
	clients := scenario.NewClients(transport)
	ctx := context.Background()

	if err := runDocumentsFlow(ctx, clients); err != nil {
		logger.Error("documents flow failed", "error", err)
		os.Exit(1)
	}
	if err := runCardsFlow(ctx, clients); err != nil {
		logger.Error("cards flow failed", "error", err)
		os.Exit(1)
	}
}

func runDocumentsFlow(ctx context.Context, clients *scenario.Clients) error {
	createUser, err := clients.Users.CreateUser(ctx, usersclient.CreateUserRequest{})
	if err != nil {
		return err
	}
	printResponse("create user", createUser)

	openAccount, err := clients.Accounts.OpenCreditCardAccount(ctx, createUser.User.ID)
	if err != nil {
		return err
	}
	printResponse("open credit card account", openAccount)

	tariff, err := clients.Documents.GetTariffDocument(ctx, openAccount.Account.ID)
	if err != nil {
		return err
	}
	printResponse("get tariff document", tariff)

	contract, err := clients.Documents.GetContractDocument(ctx, openAccount.Account.ID)
	if err != nil {
		return err
	}
	printResponse("get contract document", contract)
	return nil
}

func runCardsFlow(ctx context.Context, clients *scenario.Clients) error {
	createUser, err := clients.Users.CreateUser(ctx, usersclient.CreateUserRequest{})
	if err != nil {
		return err
	}
	printResponse("create user", createUser)

	openAccount, err := clients.Accounts.OpenDebitCardAccount(ctx, createUser.User.ID)
	if err != nil {
		return err
	}
	printResponse("open debit card account", openAccount)

	issueCard, err := clients.Cards.IssuePhysicalCard(ctx, createUser.User.ID, openAccount.Account.ID)
	if err != nil {
		return err
	}
	printResponse("issue physical card", issueCard)
	return nil
}

func printResponse(step string, v any) {
	payload, _ := json.Marshal(v)
	fmt.Printf("%s response: %s\n", step, payload)
}
