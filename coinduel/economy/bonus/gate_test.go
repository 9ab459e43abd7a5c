package bonus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coinduelbot/coinduel/coinduel/economy/ledger"
	"github.com/coinduelbot/coinduel/coinduel/store"
)

func newTestGate(t *testing.T) (*Gate, *ledger.Ledger) {
	t.Helper()
	dir := t.TempDir()
	ctx := context.Background()

	coins, err := store.NewFileSnapshot[int64](dir, "coins.json")
	if err != nil {
		t.Fatal(err)
	}
	l, err := ledger.New(ctx, coins)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := store.NewFileSnapshot[string](dir, "bonus_claims.json")
	if err != nil {
		t.Fatal(err)
	}
	g, err := New(ctx, claims, l)
	if err != nil {
		t.Fatal(err)
	}
	return g, l
}

func TestGate_ClaimOncePerDay(t *testing.T) {
	g, l := newTestGate(t)
	ctx := context.Background()

	day := time.Date(2025, 9, 1, 15, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return day }

	if !g.CanClaim("1001") {
		t.Fatal("CanClaim() = false for a fresh user, want true")
	}

	amount, err := g.Claim(ctx, "1001")
	if err != nil {
		t.Fatalf("Claim() error = %v", err)
	}
	if amount < MinReward || amount > MaxReward {
		t.Errorf("Claim() amount = %d, want within [%d, %d]", amount, MinReward, MaxReward)
	}
	if got := l.Balance("1001"); got != ledger.DefaultBalance+amount {
		t.Errorf("balance after claim = %d, want %d", got, ledger.DefaultBalance+amount)
	}

	if g.CanClaim("1001") {
		t.Error("CanClaim() = true right after a claim, want false")
	}
	if _, err := g.Claim(ctx, "1001"); !errors.Is(err, ErrAlreadyClaimed) {
		t.Errorf("second Claim() error = %v, want ErrAlreadyClaimed", err)
	}

	// Same claim a few hours later, still the same UTC date.
	g.now = func() time.Time { return day.Add(8 * time.Hour) }
	if g.CanClaim("1001") {
		t.Error("CanClaim() = true later the same day, want false")
	}

	// Next UTC day: eligible again.
	g.now = func() time.Time { return day.Add(24 * time.Hour) }
	if !g.CanClaim("1001") {
		t.Error("CanClaim() = false the next day, want true")
	}
	if _, err := g.Claim(ctx, "1001"); err != nil {
		t.Errorf("Claim() next day error = %v", err)
	}
}

func TestGate_RewardBounds(t *testing.T) {
	g, _ := newTestGate(t)
	for i := 0; i < 200; i++ {
		if amount := g.roll(); amount < MinReward || amount > MaxReward {
			t.Fatalf("roll() = %d, want within [%d, %d]", amount, MinReward, MaxReward)
		}
	}
}

func TestGate_ClaimsSurviveReload(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	coins, _ := store.NewFileSnapshot[int64](dir, "coins.json")
	l, _ := ledger.New(ctx, coins)
	claims, _ := store.NewFileSnapshot[string](dir, "bonus_claims.json")
	g, err := New(ctx, claims, l)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Claim(ctx, "1001"); err != nil {
		t.Fatalf("Claim() error = %v", err)
	}

	claims2, _ := store.NewFileSnapshot[string](dir, "bonus_claims.json")
	reloaded, err := New(ctx, claims2, l)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.CanClaim("1001") {
		t.Error("CanClaim() = true after reload on the same day, want false")
	}
}
