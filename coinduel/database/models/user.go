package models

import (
	"time"

	"github.com/uptrace/bun"
)

// User is one coin account row. DiscordID is the stable platform identity;
// Balance is the only domain attribute the ledger owns.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID        int64     `bun:"id,pk,autoincrement"`
	DiscordID string    `bun:"discord_id,notnull,unique"`
	Balance   int64     `bun:"balance,notnull,default:0"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}
