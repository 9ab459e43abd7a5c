package models

import (
	"time"

	"github.com/uptrace/bun"
)

// BonusClaim records the last UTC calendar date a user claimed the daily
// bonus on, as a YYYY-MM-DD string. One row per user, overwritten on each
// successful claim.
type BonusClaim struct {
	bun.BaseModel `bun:"table:bonus_claims,alias:bc"`

	ID          int64     `bun:"id,pk,autoincrement"`
	DiscordID   string    `bun:"discord_id,notnull,unique"`
	ClaimedDate string    `bun:"claimed_date,notnull"`
	UpdatedAt   time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}
