package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"

	"github.com/coinduelbot/coinduel/coinduel/database/models"
	"github.com/coinduelbot/coinduel/coinduel/store"
)

// UserRepository is the Postgres backend for the balance namespace. It
// satisfies store.Snapshot[int64]: Load pulls every account, Save upserts
// the full snapshot in one transaction. Accounts are never deleted, so an
// upsert-only Save is a faithful snapshot replace.
type UserRepository interface {
	Load(ctx context.Context) (map[string]int64, error)
	Save(ctx context.Context, balances map[string]int64) error
}

type userRepository struct {
	base *BaseRepository
}

func NewUserRepository(db *bun.DB) UserRepository {
	return &userRepository{base: NewBaseRepository(db)}
}

func (r *userRepository) Load(ctx context.Context) (map[string]int64, error) {
	timeoutCtx, cancel := r.base.WithTimeout(ctx)
	defer cancel()

	var users []models.User
	if err := r.base.GetDB().NewSelect().
		Model(&users).
		Scan(timeoutCtx); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrUnavailable,
			r.base.HandleError("load", "users", err))
	}

	balances := make(map[string]int64, len(users))
	for _, u := range users {
		balances[u.DiscordID] = u.Balance
	}

	slog.Debug("Balances loaded",
		slog.String("type", "db"),
		slog.Int("accounts", len(balances)),
	)
	return balances, nil
}

func (r *userRepository) Save(ctx context.Context, balances map[string]int64) error {
	if len(balances) == 0 {
		return nil
	}

	now := time.Now()
	users := make([]models.User, 0, len(balances))
	for id, balance := range balances {
		users = append(users, models.User{
			DiscordID: id,
			Balance:   balance,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	err := r.base.Transaction(ctx, func(txCtx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(&users).
			On("CONFLICT (discord_id) DO UPDATE").
			Set("balance = EXCLUDED.balance").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(txCtx)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable,
			r.base.HandleError("save", "users", err))
	}
	return nil
}
