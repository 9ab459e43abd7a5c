package economy

import (
	"context"
	"testing"

	"github.com/coinduelbot/coinduel/coinduel/economy/ledger"
	"github.com/coinduelbot/coinduel/coinduel/game/rps"
	"github.com/coinduelbot/coinduel/coinduel/store"
)

func newTestGame(t *testing.T) (*SoloGame, *ledger.Ledger) {
	t.Helper()
	snap, err := store.NewFileSnapshot[int64](t.TempDir(), "coins.json")
	if err != nil {
		t.Fatal(err)
	}
	l, err := ledger.New(context.Background(), snap)
	if err != nil {
		t.Fatal(err)
	}
	return NewSoloGame(l, DefaultSoloStake), l
}

func TestSoloGame_Play(t *testing.T) {
	tests := []struct {
		name        string
		house       rps.Choice
		player      rps.Choice
		wantResult  rps.Result
		wantDelta   int64
		wantBalance int64
	}{
		{"win credits stake", rps.Scissors, rps.Rock, rps.AWins, 10, 110},
		{"loss debits stake", rps.Paper, rps.Rock, rps.BWins, -10, 90},
		{"draw is a no-op", rps.Rock, rps.Rock, rps.Draw, 0, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, l := newTestGame(t)
			g.houseMove = func() rps.Choice { return tt.house }

			got, err := g.Play(context.Background(), "1001", tt.player)
			if err != nil {
				t.Fatalf("Play() error = %v", err)
			}
			if got.Result != tt.wantResult {
				t.Errorf("Result = %v, want %v", got.Result, tt.wantResult)
			}
			if got.Delta != tt.wantDelta {
				t.Errorf("Delta = %d, want %d", got.Delta, tt.wantDelta)
			}
			if got.NewBalance != tt.wantBalance {
				t.Errorf("NewBalance = %d, want %d", got.NewBalance, tt.wantBalance)
			}
			if bal := l.Balance("1001"); bal != tt.wantBalance {
				t.Errorf("ledger balance = %d, want %d", bal, tt.wantBalance)
			}
			if got.HouseChoice != tt.house {
				t.Errorf("HouseChoice = %v, want %v", got.HouseChoice, tt.house)
			}
		})
	}
}

func TestSoloGame_LossClampsAtZero(t *testing.T) {
	g, l := newTestGame(t)
	ctx := context.Background()

	if _, err := l.Adjust(ctx, "1001", -95); err != nil {
		t.Fatal(err)
	}
	g.houseMove = func() rps.Choice { return rps.Paper }

	got, err := g.Play(ctx, "1001", rps.Rock)
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if got.NewBalance != 0 {
		t.Errorf("NewBalance = %d, want 0 (clamped)", got.NewBalance)
	}
}
