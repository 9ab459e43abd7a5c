// Package ledger owns every account balance. It is the single writer of the
// balance namespace: all credits and debits anywhere in the bot go through
// Adjust.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/coinduelbot/coinduel/coinduel/store"
)

// DefaultBalance is what an account holds before its first mutation.
// Reads of unknown users return it without persisting anything; the record
// materializes lazily on the first Adjust.
const DefaultBalance int64 = 100

// Entry is one leaderboard row.
type Entry struct {
	UserID  string
	Balance int64
}

// Ledger keeps the authoritative in-memory view of balances, backed by a
// snapshot store. A single mutex covers the map: operations on one ledger
// are linearizable, which is stricter than the per-account requirement but
// costs nothing at chat-group scale.
type Ledger struct {
	mu       sync.Mutex
	snapshot store.Snapshot[int64]
	balances map[string]int64
	order    []string // materialization order, breaks leaderboard ties
}

// New loads the balance namespace and returns a ready ledger.
func New(ctx context.Context, snapshot store.Snapshot[int64]) (*Ledger, error) {
	balances, err := snapshot.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load balances: %w", err)
	}

	order := make([]string, 0, len(balances))
	for id := range balances {
		order = append(order, id)
	}
	// Snapshot maps carry no order of their own; start deterministic.
	sort.Strings(order)

	slog.Info("Ledger initialized",
		slog.String("type", "db"),
		slog.Int("accounts", len(balances)),
	)

	return &Ledger{
		snapshot: snapshot,
		balances: balances,
		order:    order,
	}, nil
}

// Balance returns the user's coins, or DefaultBalance for unknown users.
func (l *Ledger) Balance(userID string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance(userID)
}

func (l *Ledger) balance(userID string) int64 {
	if b, ok := l.balances[userID]; ok {
		return b
	}
	return DefaultBalance
}

// Adjust applies delta to the user's balance, clamping at zero. The clamp
// is policy, not an error: a debit larger than the balance empties the
// account. The new balance is persisted before the call returns; if the
// store fails, memory is rolled back and the error reported.
func (l *Ledger) Adjust(ctx context.Context, userID string, delta int64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	old, existed := l.balances[userID]
	updated := l.balance(userID) + delta
	if updated < 0 {
		updated = 0
	}

	l.balances[userID] = updated
	if !existed {
		l.order = append(l.order, userID)
	}

	if err := l.snapshot.Save(ctx, l.balances); err != nil {
		if existed {
			l.balances[userID] = old
		} else {
			delete(l.balances, userID)
			l.order = l.order[:len(l.order)-1]
		}
		slog.Error("Failed to persist balances",
			slog.String("type", "db"),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return 0, fmt.Errorf("save balances: %w", err)
	}

	return updated, nil
}

// Top returns up to n accounts ordered by balance descending. Accounts
// with equal balances keep their materialization order.
func (l *Ledger) Top(n int) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := make([]Entry, 0, len(l.order))
	for _, id := range l.order {
		entries = append(entries, Entry{UserID: id, Balance: l.balances[id]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Balance > entries[j].Balance
	})

	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// Size reports how many accounts have materialized.
func (l *Ledger) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.balances)
}
