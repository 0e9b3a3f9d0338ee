/**
 * @description
 * In-memory double of the bank gateway used by the e2e tests, the demo binary
 * and loadgen dry runs. It implements every endpoint the resource clients
 * target, issues UUID identifiers the way the real service does, and keeps all
 * state in process. It is test tooling, not a gateway implementation: no
 * persistence, no auth, no business rules beyond what the clients observe.
 */
package gatewaytest

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Linkin89/performance-tests/internal/domain"
)

// Gateway is an in-memory fake of the remote gateway service.
type Gateway struct {
	mu         sync.Mutex
	users      map[string]domain.User
	accounts   map[string]domain.Account
	accountsBy map[string][]string // userID -> accountIDs, insertion order
	operations map[string]domain.Operation
	opsBy      map[string][]string // accountID -> operationIDs
}

// NewGateway creates an empty fake gateway.
func NewGateway() *Gateway {
	return &Gateway{
		users:      make(map[string]domain.User),
		accounts:   make(map[string]domain.Account),
		accountsBy: make(map[string][]string),
		operations: make(map[string]domain.Operation),
		opsBy:      make(map[string][]string),
	}
}

// Handler returns the chi router exposing the gateway API surface.
func (g *Gateway) Handler() http.Handler {
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/users", g.handleCreateUser)
		r.Get("/users/{userID}", g.handleGetUser)

		r.Get("/accounts", g.handleGetAccounts)
		r.Post("/accounts/open-deposit-account", g.openAccountHandler(domain.AccountTypeDeposit))
		r.Post("/accounts/open-savings-account", g.openAccountHandler(domain.AccountTypeSavings))
		r.Post("/accounts/open-debit-card-account", g.openAccountHandler(domain.AccountTypeDebitCard))
		r.Post("/accounts/open-credit-card-account", g.openAccountHandler(domain.AccountTypeCreditCard))

		r.Post("/cards/issue-virtual-card", g.issueCardHandler(domain.CardTypeVirtual))
		r.Post("/cards/issue-physical-card", g.issueCardHandler(domain.CardTypePhysical))

		r.Get("/operations", g.handleGetOperations)
		r.Get("/operations/operations-summary", g.handleOperationsSummary)
		r.Get("/operations/operation-receipt/{operationID}", g.handleOperationReceipt)
		r.Get("/operations/{operationID}", g.handleGetOperation)
		r.Post("/operations/make-fee-operation", g.makeOperationHandler(domain.OperationTypeFee))
		r.Post("/operations/make-top-up-operation", g.makeOperationHandler(domain.OperationTypeTopUp))
		r.Post("/operations/make-cashback-operation", g.makeOperationHandler(domain.OperationTypeCashback))
		r.Post("/operations/make-transfer-operation", g.makeOperationHandler(domain.OperationTypeTransfer))
		r.Post("/operations/make-purchase-operation", g.makeOperationHandler(domain.OperationTypePurchase))
		r.Post("/operations/make-bill-payment-operation", g.makeOperationHandler(domain.OperationTypeBillPayment))
		r.Post("/operations/make-cash-withdrawal-operation", g.makeOperationHandler(domain.OperationTypeCashWithdrawal))

		r.Get("/documents/tariff-document/{accountID}", g.documentHandler("tariff"))
		r.Get("/documents/contract-document/{accountID}", g.documentHandler("contract"))
	})

	return r
}

func (g *Gateway) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email       string `json:"email"`
		LastName    string `json:"lastName"`
		FirstName   string `json:"firstName"`
		MiddleName  string `json:"middleName"`
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	user := domain.User{
		ID:          uuid.NewString(),
		Email:       req.Email,
		LastName:    req.LastName,
		FirstName:   req.FirstName,
		MiddleName:  req.MiddleName,
		PhoneNumber: req.PhoneNumber,
	}

	g.mu.Lock()
	g.users[user.ID] = user
	g.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]domain.User{"user": user})
}

func (g *Gateway) handleGetUser(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	user, ok := g.users[chi.URLParam(r, "userID")]
	g.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]domain.User{"user": user})
}

func (g *Gateway) handleGetAccounts(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId query parameter is required")
		return
	}

	g.mu.Lock()
	accounts := make([]domain.Account, 0, len(g.accountsBy[userID]))
	for _, id := range g.accountsBy[userID] {
		accounts = append(accounts, g.accounts[id])
	}
	g.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string][]domain.Account{"accounts": accounts})
}

func (g *Gateway) openAccountHandler(accountType domain.AccountType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			UserID string `json:"userId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
			writeError(w, http.StatusBadRequest, "userId is required")
			return
		}

		g.mu.Lock()
		user, ok := g.users[req.UserID]
		if !ok {
			g.mu.Unlock()
			writeError(w, http.StatusNotFound, "user not found")
			return
		}

		account := domain.Account{
			ID:     uuid.NewString(),
			Type:   accountType,
			Status: domain.AccountStatusActive,
			Cards:  []domain.Card{},
		}
		// Card-backed account types come with a card already attached.
		if accountType == domain.AccountTypeDebitCard || accountType == domain.AccountTypeCreditCard {
			account.Cards = append(account.Cards, newCard(domain.CardTypePhysical, account.ID, user))
		}

		g.accounts[account.ID] = account
		g.accountsBy[req.UserID] = append(g.accountsBy[req.UserID], account.ID)
		g.mu.Unlock()

		writeJSON(w, http.StatusOK, map[string]domain.Account{"account": account})
	}
}

func (g *Gateway) issueCardHandler(cardType domain.CardType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			UserID    string `json:"userId"`
			AccountID string `json:"accountId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" || req.AccountID == "" {
			writeError(w, http.StatusBadRequest, "userId and accountId are required")
			return
		}

		g.mu.Lock()
		user, ok := g.users[req.UserID]
		if !ok {
			g.mu.Unlock()
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		account, ok := g.accounts[req.AccountID]
		if !ok {
			g.mu.Unlock()
			writeError(w, http.StatusNotFound, "account not found")
			return
		}

		card := newCard(cardType, account.ID, user)
		account.Cards = append(account.Cards, card)
		g.accounts[account.ID] = account
		g.mu.Unlock()

		writeJSON(w, http.StatusOK, map[string]domain.Card{"card": card})
	}
}

func (g *Gateway) makeOperationHandler(opType domain.OperationType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Status    domain.OperationStatus `json:"status"`
			Amount    float64                `json:"amount"`
			CardID    string                 `json:"cardId"`
			AccountID string                 `json:"accountId"`
			Category  string                 `json:"category"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.CardID == "" || req.AccountID == "" {
			writeError(w, http.StatusBadRequest, "cardId and accountId are required")
			return
		}
		if opType == domain.OperationTypePurchase && req.Category == "" {
			writeError(w, http.StatusBadRequest, "category is required for purchase operations")
			return
		}

		op := domain.Operation{
			ID:        uuid.NewString(),
			Type:      opType,
			Status:    req.Status,
			Amount:    req.Amount,
			CardID:    req.CardID,
			Category:  req.Category,
			CreatedAt: time.Now().UTC(),
			AccountID: req.AccountID,
		}

		g.mu.Lock()
		g.operations[op.ID] = op
		g.opsBy[op.AccountID] = append(g.opsBy[op.AccountID], op.ID)
		g.mu.Unlock()

		writeJSON(w, http.StatusOK, map[string]domain.Operation{"operation": op})
	}
}

func (g *Gateway) handleGetOperation(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	op, ok := g.operations[chi.URLParam(r, "operationID")]
	g.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "operation not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]domain.Operation{"operation": op})
}

func (g *Gateway) handleOperationReceipt(w http.ResponseWriter, r *http.Request) {
	operationID := chi.URLParam(r, "operationID")
	g.mu.Lock()
	op, ok := g.operations[operationID]
	g.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "operation not found")
		return
	}

	receipt := domain.OperationReceipt{
		URL:      fmt.Sprintf("https://gateway.local/receipts/%s.pdf", op.ID),
		Document: fmt.Sprintf("receipt for %s operation %s", op.Type, op.ID),
	}
	writeJSON(w, http.StatusOK, map[string]domain.OperationReceipt{"receipt": receipt})
}

func (g *Gateway) handleGetOperations(w http.ResponseWriter, r *http.Request) {
	accountID := r.URL.Query().Get("accountId")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "accountId query parameter is required")
		return
	}

	g.mu.Lock()
	ops := make([]domain.Operation, 0, len(g.opsBy[accountID]))
	for _, id := range g.opsBy[accountID] {
		ops = append(ops, g.operations[id])
	}
	g.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string][]domain.Operation{"operations": ops})
}

func (g *Gateway) handleOperationsSummary(w http.ResponseWriter, r *http.Request) {
	accountID := r.URL.Query().Get("accountId")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "accountId query parameter is required")
		return
	}

	var summary domain.OperationsSummary
	g.mu.Lock()
	for _, id := range g.opsBy[accountID] {
		op := g.operations[id]
		switch op.Type {
		case domain.OperationTypeTopUp:
			summary.ReceivedAmount += op.Amount
		case domain.OperationTypeCashback:
			summary.CashbackAmount += op.Amount
		default:
			summary.SpentAmount += op.Amount
		}
	}
	g.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]domain.OperationsSummary{"summary": summary})
}

func (g *Gateway) documentHandler(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := chi.URLParam(r, "accountID")

		g.mu.Lock()
		_, ok := g.accounts[accountID]
		g.mu.Unlock()
		if !ok {
			writeError(w, http.StatusNotFound, "account not found")
			return
		}

		doc := domain.Document{
			URL:      fmt.Sprintf("https://gateway.local/documents/%s/%s.pdf", kind, accountID),
			Document: fmt.Sprintf("%s document for account %s", kind, accountID),
		}
		writeJSON(w, http.StatusOK, map[string]domain.Document{kind: doc})
	}
}

func newCard(cardType domain.CardType, accountID string, owner domain.User) domain.Card {
	expiry := time.Now().AddDate(4, 0, 0)
	return domain.Card{
		ID:            uuid.NewString(),
		PIN:           fmt.Sprintf("%04d", rand.IntN(10000)),
		CVV:           fmt.Sprintf("%03d", rand.IntN(1000)),
		Type:          cardType,
		Status:        domain.CardStatusActive,
		AccountID:     accountID,
		CardNumber:    fmt.Sprintf("4%015d", rand.Int64N(1_000_000_000_000_000)),
		CardHolder:    owner.FirstName + " " + owner.LastName,
		ExpiryDate:    expiry.Format("01/06"),
		PaymentSystem: domain.CardPaymentSystems()[rand.IntN(2)],
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
