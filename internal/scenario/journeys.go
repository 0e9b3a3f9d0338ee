/**
 * @description
 * The shipped user journeys. Each mirrors a real flow against the gateway:
 * accounts browsing, card issuing, purchase operations and document reads.
 * Task weights skew sessions toward the cheap read calls, the way production
 * traffic does.
 */
package scenario

import (
	"context"

	"github.com/Linkin89/performance-tests/pkg/usersclient"
)

func createUserTask(weight int) Task {
	return Task{
		Name:   "create_user",
		Weight: weight,
		Run: func(ctx context.Context, s *Session) error {
			resp, err := s.Clients.Users.CreateUser(ctx, usersclient.CreateUserRequest{})
			if err != nil {
				return err
			}
			s.UserID = resp.User.ID
			return nil
		},
	}
}

// AccountsJourney: create user, open a deposit account, list accounts.
func AccountsJourney() *TaskSet {
	return &TaskSet{
		Name: "accounts",
		Tasks: []Task{
			createUserTask(2),
			{
				Name:   "open_deposit_account",
				Weight: 2,
				Run: func(ctx context.Context, s *Session) error {
					if s.UserID == "" {
						return ErrSkipped
					}
					resp, err := s.Clients.Accounts.OpenDepositAccount(ctx, s.UserID)
					if err != nil {
						return err
					}
					s.AccountID = resp.Account.ID
					return nil
				},
			},
			{
				Name:   "get_accounts",
				Weight: 6,
				Run: func(ctx context.Context, s *Session) error {
					if s.UserID == "" {
						return ErrSkipped
					}
					_, err := s.Clients.Accounts.GetAccounts(ctx, s.UserID)
					return err
				},
			},
		},
	}
}

// CardsJourney: create user, open a debit-card account, issue a physical card,
// list accounts.
func CardsJourney() *TaskSet {
	return &TaskSet{
		Name: "cards",
		Tasks: []Task{
			createUserTask(1),
			{
				Name:   "open_debit_card_account",
				Weight: 2,
				Run: func(ctx context.Context, s *Session) error {
					if s.UserID == "" {
						return ErrSkipped
					}
					resp, err := s.Clients.Accounts.OpenDebitCardAccount(ctx, s.UserID)
					if err != nil {
						return err
					}
					s.AccountID = resp.Account.ID
					return nil
				},
			},
			{
				Name:   "issue_physical_card",
				Weight: 2,
				Run: func(ctx context.Context, s *Session) error {
					if s.UserID == "" || s.AccountID == "" {
						return ErrSkipped
					}
					resp, err := s.Clients.Cards.IssuePhysicalCard(ctx, s.UserID, s.AccountID)
					if err != nil {
						return err
					}
					s.CardID = resp.Card.ID
					return nil
				},
			},
			{
				Name:   "get_accounts",
				Weight: 4,
				Run: func(ctx context.Context, s *Session) error {
					if s.UserID == "" {
						return ErrSkipped
					}
					_, err := s.Clients.Accounts.GetAccounts(ctx, s.UserID)
					return err
				},
			},
		},
	}
}

// OperationsJourney: create user, open a credit-card account, make a purchase
// with the account's card, read the receipt and the operations summary.
func OperationsJourney() *TaskSet {
	return &TaskSet{
		Name: "operations",
		Tasks: []Task{
			createUserTask(1),
			{
				Name:   "open_credit_card_account",
				Weight: 2,
				Run: func(ctx context.Context, s *Session) error {
					if s.UserID == "" {
						return ErrSkipped
					}
					resp, err := s.Clients.Accounts.OpenCreditCardAccount(ctx, s.UserID)
					if err != nil {
						return err
					}
					s.AccountID = resp.Account.ID
					if len(resp.Account.Cards) > 0 {
						s.CardID = resp.Account.Cards[0].ID
					}
					return nil
				},
			},
			{
				Name:   "make_purchase_operation",
				Weight: 3,
				Run: func(ctx context.Context, s *Session) error {
					if s.CardID == "" || s.AccountID == "" {
						return ErrSkipped
					}
					resp, err := s.Clients.Operations.MakePurchaseOperation(ctx, s.CardID, s.AccountID, "")
					if err != nil {
						return err
					}
					s.OperationID = resp.Operation.ID
					return nil
				},
			},
			{
				Name:   "get_operation_receipt",
				Weight: 2,
				Run: func(ctx context.Context, s *Session) error {
					if s.OperationID == "" {
						return ErrSkipped
					}
					_, err := s.Clients.Operations.GetOperationReceipt(ctx, s.OperationID)
					return err
				},
			},
			{
				Name:   "get_operations_summary",
				Weight: 4,
				Run: func(ctx context.Context, s *Session) error {
					if s.AccountID == "" {
						return ErrSkipped
					}
					_, err := s.Clients.Operations.GetOperationsSummary(ctx, s.AccountID)
					return err
				},
			},
		},
	}
}

// DocumentsJourney: create user, open a credit-card account, fetch the tariff
// and contract documents for it.
func DocumentsJourney() *TaskSet {
	return &TaskSet{
		Name: "documents",
		Tasks: []Task{
			createUserTask(1),
			{
				Name:   "open_credit_card_account",
				Weight: 2,
				Run: func(ctx context.Context, s *Session) error {
					if s.UserID == "" {
						return ErrSkipped
					}
					resp, err := s.Clients.Accounts.OpenCreditCardAccount(ctx, s.UserID)
					if err != nil {
						return err
					}
					s.AccountID = resp.Account.ID
					return nil
				},
			},
			{
				Name:   "get_tariff_document",
				Weight: 3,
				Run: func(ctx context.Context, s *Session) error {
					if s.AccountID == "" {
						return ErrSkipped
					}
					_, err := s.Clients.Documents.GetTariffDocument(ctx, s.AccountID)
					return err
				},
			},
			{
				Name:   "get_contract_document",
				Weight: 3,
				Run: func(ctx context.Context, s *Session) error {
					if s.AccountID == "" {
						return ErrSkipped
					}
					_, err := s.Clients.Documents.GetContractDocument(ctx, s.AccountID)
					return err
				},
			},
		},
	}
}

// Journeys maps scenario names accepted by configuration to their task sets.
func Journeys() map[string]func() *TaskSet {
	return map[string]func() *TaskSet{
		"accounts":   AccountsJourney,
		"cards":      CardsJourney,
		"operations": OperationsJourney,
		"documents":  DocumentsJourney,
	}
}
