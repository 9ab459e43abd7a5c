// Package bonus gates the once-per-UTC-day random coin reward.
package bonus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/coinduelbot/coinduel/coinduel/economy/ledger"
	"github.com/coinduelbot/coinduel/coinduel/store"
)

const (
	MinReward int64 = 10
	MaxReward int64 = 100
)

var ErrAlreadyClaimed = errors.New("bonus already claimed today")

// Gate tracks the last UTC calendar date each user claimed on. Dates are
// stored as YYYY-MM-DD strings, so "claimed today" is a plain string
// comparison.
type Gate struct {
	mu       sync.Mutex
	snapshot store.Snapshot[string]
	claims   map[string]string
	ledger   *ledger.Ledger

	now  func() time.Time
	roll func() int64
}

// New loads the claim namespace and returns a ready gate.
func New(ctx context.Context, snapshot store.Snapshot[string], l *ledger.Ledger) (*Gate, error) {
	claims, err := snapshot.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bonus claims: %w", err)
	}

	return &Gate{
		snapshot: snapshot,
		claims:   claims,
		ledger:   l,
		now:      time.Now,
		roll: func() int64 {
			return MinReward + rand.Int63n(MaxReward-MinReward+1)
		},
	}, nil
}

func (g *Gate) today() string {
	return g.now().UTC().Format(time.DateOnly)
}

// CanClaim reports whether the user still has a claim left today. Display
// only; Claim re-checks under its own lock.
func (g *Gate) CanClaim(userID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.claims[userID] != g.today()
}

// Claim stamps today's date, credits a random reward in [MinReward,
// MaxReward] and returns the amount. The eligibility check, the stamp and
// the credit happen under the gate lock, so concurrent claims by the same
// user cannot both succeed on one day.
func (g *Gate) Claim(ctx context.Context, userID string) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	today := g.today()
	prev, hadPrev := g.claims[userID]
	if hadPrev && prev == today {
		return 0, ErrAlreadyClaimed
	}

	g.claims[userID] = today
	if err := g.snapshot.Save(ctx, g.claims); err != nil {
		if hadPrev {
			g.claims[userID] = prev
		} else {
			delete(g.claims, userID)
		}
		return 0, fmt.Errorf("save bonus claims: %w", err)
	}

	amount := g.roll()
	if _, err := g.ledger.Adjust(ctx, userID, amount); err != nil {
		// The stamp persisted but the credit did not: roll the stamp back
		// so the user is not locked out of a reward they never received.
		if hadPrev {
			g.claims[userID] = prev
		} else {
			delete(g.claims, userID)
		}
		if saveErr := g.snapshot.Save(ctx, g.claims); saveErr != nil {
			slog.Error("Failed to revert bonus claim stamp",
				slog.String("type", "db"),
				slog.String("user_id", userID),
				slog.Any("error", saveErr),
			)
		}
		return 0, fmt.Errorf("credit bonus: %w", err)
	}

	slog.Info("Daily bonus claimed",
		slog.String("type", "cmd"),
		slog.String("user_id", userID),
		slog.Int64("amount", amount),
	)
	return amount, nil
}
