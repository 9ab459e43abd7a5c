package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/coinduelbot/coinduel/coinduel/database/models"
	"github.com/coinduelbot/coinduel/coinduel/store"
)

// BonusClaimRepository is the Postgres backend for the bonus-claim
// namespace (store.Snapshot[string]); one row per user, value is the last
// claimed UTC date.
type BonusClaimRepository interface {
	Load(ctx context.Context) (map[string]string, error)
	Save(ctx context.Context, claims map[string]string) error
}

type bonusClaimRepository struct {
	base *BaseRepository
}

func NewBonusClaimRepository(db *bun.DB) BonusClaimRepository {
	return &bonusClaimRepository{base: NewBaseRepository(db)}
}

func (r *bonusClaimRepository) Load(ctx context.Context) (map[string]string, error) {
	timeoutCtx, cancel := r.base.WithTimeout(ctx)
	defer cancel()

	var rows []models.BonusClaim
	if err := r.base.GetDB().NewSelect().
		Model(&rows).
		Scan(timeoutCtx); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrUnavailable,
			r.base.HandleError("load", "bonus_claims", err))
	}

	claims := make(map[string]string, len(rows))
	for _, row := range rows {
		claims[row.DiscordID] = row.ClaimedDate
	}
	return claims, nil
}

func (r *bonusClaimRepository) Save(ctx context.Context, claims map[string]string) error {
	if len(claims) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]models.BonusClaim, 0, len(claims))
	for id, date := range claims {
		rows = append(rows, models.BonusClaim{
			DiscordID:   id,
			ClaimedDate: date,
			UpdatedAt:   now,
		})
	}

	err := r.base.Transaction(ctx, func(txCtx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(&rows).
			On("CONFLICT (discord_id) DO UPDATE").
			Set("claimed_date = EXCLUDED.claimed_date").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(txCtx)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable,
			r.base.HandleError("save", "bonus_claims", err))
	}
	return nil
}
