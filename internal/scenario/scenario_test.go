package scenario

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/Linkin89/performance-tests/internal/gatewaytest"
	"github.com/Linkin89/performance-tests/pkg/gatewayhttp"
)

func newTestClients(t *testing.T) *Clients {
	t.Helper()
	server := httptest.NewServer(gatewaytest.NewGateway().Handler())
	t.Cleanup(server.Close)
	return NewClients(gatewayhttp.NewClient(server.URL, ""))
}

func findTask(t *testing.T, ts *TaskSet, name string) Task {
	t.Helper()
	for _, task := range ts.Tasks {
		if task.Name == name {
			return task
		}
	}
	t.Fatalf("task %q not found in task set %q", name, ts.Name)
	return Task{}
}

func TestTasksSkipWhenPrerequisiteAbsent(t *testing.T) {
	clients := newTestClients(t)
	ctx := context.Background()

	tests := []struct {
		set  *TaskSet
		task string
	}{
		{AccountsJourney(), "open_deposit_account"},
		{AccountsJourney(), "get_accounts"},
		{CardsJourney(), "issue_physical_card"},
		{OperationsJourney(), "make_purchase_operation"},
		{OperationsJourney(), "get_operation_receipt"},
		{DocumentsJourney(), "get_tariff_document"},
	}

	for _, tt := range tests {
		t.Run(tt.set.Name+"/"+tt.task, func(t *testing.T) {
			session := NewSession(clients) // fresh session, no prior responses
			err := findTask(t, tt.set, tt.task).Run(ctx, session)
			if !errors.Is(err, ErrSkipped) {
				t.Fatalf("expected ErrSkipped, got %v", err)
			}
		})
	}
}

func TestRunSequenceCompletesEveryJourney(t *testing.T) {
	for name, newSet := range Journeys() {
		t.Run(name, func(t *testing.T) {
			clients := newTestClients(t)
			session := NewSession(clients)
			if err := newSet().RunSequence(context.Background(), session); err != nil {
				t.Fatalf("journey %q failed: %v", name, err)
			}
			if session.UserID == "" {
				t.Fatal("expected session to thread a user id")
			}
		})
	}
}

func TestPickCoversAllTasks(t *testing.T) {
	set := AccountsJourney()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		seen[set.Pick().Name] = true
	}
	for _, task := range set.Tasks {
		if !seen[task.Name] {
			t.Fatalf("weighted pick never selected task %q", task.Name)
		}
	}
}
