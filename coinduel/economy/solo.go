// Package economy ties the game engine to the ledger for house play.
package economy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/coinduelbot/coinduel/coinduel/economy/ledger"
	"github.com/coinduelbot/coinduel/coinduel/game/rps"
)

// DefaultSoloStake is the fixed amount won or lost against the house.
const DefaultSoloStake int64 = 10

// SoloResult describes one round against the house.
type SoloResult struct {
	PlayerChoice rps.Choice
	HouseChoice  rps.Choice
	Result       rps.Result // relative to the player
	Delta        int64      // nominal stake delta; the ledger clamp may absorb part of a loss
	NewBalance   int64
}

// SoloGame plays fixed-stake rounds against a random house move.
type SoloGame struct {
	ledger *ledger.Ledger
	stake  int64

	houseMove func() rps.Choice
}

func NewSoloGame(l *ledger.Ledger, stake int64) *SoloGame {
	if stake <= 0 {
		stake = DefaultSoloStake
	}
	return &SoloGame{ledger: l, stake: stake, houseMove: rps.Random}
}

// Play resolves one round. A win credits the stake, a loss debits it
// (clamped at zero by the ledger), a draw changes nothing.
func (g *SoloGame) Play(ctx context.Context, userID string, choice rps.Choice) (SoloResult, error) {
	house := g.houseMove()
	result := rps.Resolve(choice, house)

	var delta int64
	switch result {
	case rps.AWins:
		delta = g.stake
	case rps.BWins:
		delta = -g.stake
	}

	balance := g.ledger.Balance(userID)
	if delta != 0 {
		var err error
		balance, err = g.ledger.Adjust(ctx, userID, delta)
		if err != nil {
			return SoloResult{}, fmt.Errorf("apply solo result: %w", err)
		}
	}

	slog.Debug("Solo round played",
		slog.String("type", "cmd"),
		slog.String("user_id", userID),
		slog.String("player", string(choice)),
		slog.String("house", string(house)),
		slog.Int64("delta", delta),
	)

	return SoloResult{
		PlayerChoice: choice,
		HouseChoice:  house,
		Result:       result,
		Delta:        delta,
		NewBalance:   balance,
	}, nil
}
