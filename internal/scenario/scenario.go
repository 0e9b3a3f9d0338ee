/**
 * @description
 * Scenario composition: named tasks chained into user journeys, threading
 * identifiers from one response into the next request. A task whose
 * prerequisite step has not produced a response yet is a no-op (ErrSkipped),
 * never a fault; under weighted random selection tasks can fire before their
 * prerequisites within a fresh session.
 */
package scenario

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/Linkin89/performance-tests/pkg/accountsclient"
	"github.com/Linkin89/performance-tests/pkg/cardsclient"
	"github.com/Linkin89/performance-tests/pkg/documentsclient"
	"github.com/Linkin89/performance-tests/pkg/gatewayhttp"
	"github.com/Linkin89/performance-tests/pkg/operationsclient"
	"github.com/Linkin89/performance-tests/pkg/usersclient"
)

// ErrSkipped marks a task that did not run because a prerequisite step's
// response is absent.
var ErrSkipped = errors.New("task skipped: prerequisite response absent")

// Clients bundles one resource client per gateway resource group. Clients are
// stateless, so one bundle is safely shared by all sessions.
type Clients struct {
	Users      *usersclient.Client
	Accounts   *accountsclient.Client
	Cards      *cardsclient.Client
	Operations *operationsclient.Client
	Documents  *documentsclient.Client
}

// NewClients constructs the full client bundle over one transport client.
func NewClients(transport *gatewayhttp.Client) *Clients {
	return &Clients{
		Users:      usersclient.NewClient(transport),
		Accounts:   accountsclient.NewClient(transport),
		Cards:      cardsclient.NewClient(transport),
		Operations: operationsclient.NewClient(transport),
		Documents:  documentsclient.NewClient(transport),
	}
}

// Session is one virtual user's state: the identifiers threaded between steps.
// Sessions share no mutable state with each other.
type Session struct {
	Clients *Clients

	UserID      string
	AccountID   string
	CardID      string
	OperationID string
}

// NewSession creates a fresh session over the shared client bundle.
func NewSession(clients *Clients) *Session {
	return &Session{Clients: clients}
}

// Task is one named step of a journey. Weight controls how often the task is
// picked under weighted random selection.
type Task struct {
	Name   string
	Weight int
	Run    func(ctx context.Context, s *Session) error
}

// TaskSet is a named, ordered collection of tasks forming one journey.
type TaskSet struct {
	Name  string
	Tasks []Task
}

// Pick selects a task at random, proportionally to the task weights.
func (ts *TaskSet) Pick() Task {
	total := 0
	for _, t := range ts.Tasks {
		total += t.Weight
	}
	n := rand.IntN(total)
	for _, t := range ts.Tasks {
		n -= t.Weight
		if n < 0 {
			return t
		}
	}
	return ts.Tasks[len(ts.Tasks)-1]
}

// RunSequence executes every task once in declared order, stopping at the
// first hard failure. Skips are not failures. Used by demos and e2e tests.
func (ts *TaskSet) RunSequence(ctx context.Context, s *Session) error {
	for _, t := range ts.Tasks {
		if err := t.Run(ctx, s); err != nil && !errors.Is(err, ErrSkipped) {
			return fmt.Errorf("task %s: %w", t.Name, err)
		}
	}
	return nil
}
