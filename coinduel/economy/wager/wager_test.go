package wager

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinduelbot/coinduel/coinduel/economy/ledger"
	"github.com/coinduelbot/coinduel/coinduel/game/rps"
	"github.com/coinduelbot/coinduel/coinduel/store"
)

func newTestSettler(t *testing.T) (*Settler, *ledger.Ledger, *Registry) {
	t.Helper()
	snap, err := store.NewFileSnapshot[int64](t.TempDir(), "coins.json")
	require.NoError(t, err)
	l, err := ledger.New(context.Background(), snap)
	require.NoError(t, err)
	r := NewRegistry()
	return NewSettler(l, r), l, r
}

func TestSettler_PlaceValidation(t *testing.T) {
	s, l, r := newTestSettler(t)

	assert.ErrorIs(t, s.Place("target", "challenger", 0, rps.Rock), ErrInvalidStake)
	assert.ErrorIs(t, s.Place("target", "challenger", -5, rps.Rock), ErrInvalidStake)
	assert.ErrorIs(t, s.Place("target", "challenger", 101, rps.Rock), ErrInsufficientFunds)
	assert.Equal(t, 0, r.Len())

	require.NoError(t, s.Place("target", "challenger", 100, rps.Rock))
	assert.Equal(t, 1, r.Len())

	// Placement holds nothing in escrow.
	assert.Equal(t, int64(100), l.Balance("challenger"))
}

func TestSettler_SettleConservation(t *testing.T) {
	s, l, _ := newTestSettler(t)
	ctx := context.Background()

	// Challenger stakes 30 on rock; target accepts with scissors and loses.
	require.NoError(t, s.Place("target", "challenger", 30, rps.Rock))

	out, err := s.Settle(ctx, "target", rps.Scissors)
	require.NoError(t, err)

	assert.Equal(t, rps.BWins, out.Result)
	assert.Equal(t, int64(30), out.Stake)
	assert.Equal(t, int64(130), l.Balance("challenger"))
	assert.Equal(t, int64(70), l.Balance("target"))
	assert.Equal(t, int64(200), l.Balance("challenger")+l.Balance("target"))
	assert.Equal(t, int64(130), out.ChallengerBalance)
	assert.Equal(t, int64(70), out.AcceptorBalance)
}

func TestSettler_SettleAcceptorWins(t *testing.T) {
	s, l, _ := newTestSettler(t)

	require.NoError(t, s.Place("target", "challenger", 40, rps.Paper))
	out, err := s.Settle(context.Background(), "target", rps.Scissors)
	require.NoError(t, err)

	assert.Equal(t, rps.AWins, out.Result)
	assert.Equal(t, int64(140), l.Balance("target"))
	assert.Equal(t, int64(60), l.Balance("challenger"))
}

func TestSettler_SettleDraw(t *testing.T) {
	s, l, _ := newTestSettler(t)

	require.NoError(t, s.Place("target", "challenger", 25, rps.Rock))
	out, err := s.Settle(context.Background(), "target", rps.Rock)
	require.NoError(t, err)

	assert.Equal(t, rps.Draw, out.Result)
	assert.Equal(t, int64(100), l.Balance("target"))
	assert.Equal(t, int64(100), l.Balance("challenger"))
}

func TestSettler_SettleNoPending(t *testing.T) {
	s, l, _ := newTestSettler(t)

	_, err := s.Settle(context.Background(), "target", rps.Rock)
	assert.ErrorIs(t, err, ErrNoPendingChallenge)
	assert.Equal(t, int64(100), l.Balance("target"))
	assert.Equal(t, 0, l.Size())
}

func TestSettler_ChallengeVoidOnFailedSettlement(t *testing.T) {
	s, l, r := newTestSettler(t)
	ctx := context.Background()

	require.NoError(t, s.Place("target", "challenger", 80, rps.Rock))

	// The acceptor goes broke between placement and acceptance.
	_, err := l.Adjust(ctx, "target", -100)
	require.NoError(t, err)

	_, err = s.Settle(ctx, "target", rps.Paper)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// The challenge was consumed and stays gone.
	assert.Equal(t, 0, r.Len())
	_, err = s.Settle(ctx, "target", rps.Paper)
	assert.ErrorIs(t, err, ErrNoPendingChallenge)

	// No partial transfer happened.
	assert.Equal(t, int64(100), l.Balance("challenger"))
	assert.Equal(t, int64(0), l.Balance("target"))
}

func TestSettler_ChallengerInsolventAtSettlement(t *testing.T) {
	s, l, _ := newTestSettler(t)
	ctx := context.Background()

	require.NoError(t, s.Place("target", "challenger", 80, rps.Rock))
	_, err := l.Adjust(ctx, "challenger", -100)
	require.NoError(t, err)

	_, err = s.Settle(ctx, "target", rps.Paper)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, int64(100), l.Balance("target"))
}

func TestRegistry_PendingPeeksWithoutConsuming(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Pending("target")
	assert.False(t, ok)

	r.Create("target", Challenge{Challenger: "challenger", Stake: 15, Choice: rps.Paper})

	ch, ok := r.Pending("target")
	require.True(t, ok)
	assert.Equal(t, "challenger", ch.Challenger)
	assert.Equal(t, 1, r.Len())

	// Peeking leaves the challenge in place for Consume.
	consumed, ok := r.Consume("target")
	require.True(t, ok)
	assert.Equal(t, ch, consumed)
}

func TestRegistry_LastWriterWins(t *testing.T) {
	r := NewRegistry()

	r.Create("target", Challenge{Challenger: "first", Stake: 10, Choice: rps.Rock})
	r.Create("target", Challenge{Challenger: "second", Stake: 20, Choice: rps.Paper})

	ch, ok := r.Consume("target")
	require.True(t, ok)
	assert.Equal(t, "second", ch.Challenger)
	assert.Equal(t, int64(20), ch.Stake)

	_, ok = r.Consume("target")
	assert.False(t, ok)
}

func TestRegistry_ConcurrentConsumeExactlyOnce(t *testing.T) {
	r := NewRegistry()
	r.Create("target", Challenge{Challenger: "challenger", Stake: 10, Choice: rps.Rock})

	const attempts = 32
	var won atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})

	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			<-start
			if _, ok := r.Consume("target"); ok {
				won.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), won.Load())
}
