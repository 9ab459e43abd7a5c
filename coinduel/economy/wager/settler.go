// Package wager implements the two-party betting protocol: an open
// challenge per target player, and the settlement transaction that runs
// when the target accepts.
package wager

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/coinduelbot/coinduel/coinduel/economy/ledger"
	"github.com/coinduelbot/coinduel/coinduel/game/rps"
)

var (
	ErrInvalidStake       = errors.New("stake must be a positive amount")
	ErrInsufficientFunds  = errors.New("insufficient funds for this stake")
	ErrNoPendingChallenge = errors.New("no pending challenge")
)

// Outcome is the settled result of an accepted bet, ready for rendering.
type Outcome struct {
	Result           rps.Result // relative to the acceptor (AWins = acceptor wins)
	Stake            int64
	Challenger       string
	Acceptor         string
	ChallengerChoice rps.Choice
	AcceptorChoice   rps.Choice

	// Balances after settlement, for display.
	ChallengerBalance int64
	AcceptorBalance   int64
}

// Settler validates and settles bets against the ledger.
type Settler struct {
	ledger   *ledger.Ledger
	registry *Registry
}

func NewSettler(l *ledger.Ledger, r *Registry) *Settler {
	return &Settler{ledger: l, registry: r}
}

// Place records a challenge from challenger against target. The challenger
// must be solvent for the stake now; the target's solvency is only checked
// at settlement.
func (s *Settler) Place(target, challenger string, stake int64, choice rps.Choice) error {
	if stake <= 0 {
		return ErrInvalidStake
	}
	if s.ledger.Balance(challenger) < stake {
		return ErrInsufficientFunds
	}

	s.registry.Create(target, Challenge{
		Challenger: challenger,
		Stake:      stake,
		Choice:     choice,
		CreatedAt:  time.Now(),
	})

	slog.Info("Challenge placed",
		slog.String("type", "cmd"),
		slog.String("challenger", challenger),
		slog.String("target", target),
		slog.Int64("stake", stake),
	)
	return nil
}

// Settle consumes the acceptor's pending challenge and resolves the bet.
//
// Both parties are re-validated at settlement because balances may have
// moved since placement. A challenge that fails validation here is gone
// for good: it was consumed and is deliberately not restored, so a voided
// bet cannot be retried against stale terms.
func (s *Settler) Settle(ctx context.Context, acceptor string, choice rps.Choice) (Outcome, error) {
	ch, ok := s.registry.Consume(acceptor)
	if !ok {
		return Outcome{}, ErrNoPendingChallenge
	}

	if s.ledger.Balance(acceptor) < ch.Stake || s.ledger.Balance(ch.Challenger) < ch.Stake {
		slog.Info("Challenge voided at settlement",
			slog.String("type", "cmd"),
			slog.String("challenger", ch.Challenger),
			slog.String("acceptor", acceptor),
			slog.Int64("stake", ch.Stake),
		)
		return Outcome{}, ErrInsufficientFunds
	}

	result := rps.Resolve(choice, ch.Choice)
	switch result {
	case rps.AWins:
		if err := s.transfer(ctx, acceptor, ch.Challenger, ch.Stake); err != nil {
			return Outcome{}, err
		}
	case rps.BWins:
		if err := s.transfer(ctx, ch.Challenger, acceptor, ch.Stake); err != nil {
			return Outcome{}, err
		}
	}

	return Outcome{
		Result:            result,
		Stake:             ch.Stake,
		Challenger:        ch.Challenger,
		Acceptor:          acceptor,
		ChallengerChoice:  ch.Choice,
		AcceptorChoice:    choice,
		ChallengerBalance: s.ledger.Balance(ch.Challenger),
		AcceptorBalance:   s.ledger.Balance(acceptor),
	}, nil
}

// transfer moves stake from loser to winner through two individually
// atomic adjustments. Both parties were solvent a moment ago, so the
// loser's clamp cannot fire outside of a storage failure window.
func (s *Settler) transfer(ctx context.Context, winner, loser string, stake int64) error {
	if _, err := s.ledger.Adjust(ctx, winner, stake); err != nil {
		return fmt.Errorf("credit winner: %w", err)
	}
	if _, err := s.ledger.Adjust(ctx, loser, -stake); err != nil {
		return fmt.Errorf("debit loser: %w", err)
	}
	return nil
}
