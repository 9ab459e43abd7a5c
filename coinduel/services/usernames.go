package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/coinduelbot/coinduel/coinduel/config"
)

const maxConcurrentLookups = 4

// UsernameCache resolves Discord user ids to display names for rendering,
// with an LRU in front of the REST API. Resolution failures degrade to a
// "User(<id>)" placeholder rather than failing the caller.
type UsernameCache struct {
	client bot.Client
	cache  *lru.Cache
}

func NewUsernameCache(client bot.Client) *UsernameCache {
	cache, _ := lru.New(config.UsernameCacheSize)
	return &UsernameCache{client: client, cache: cache}
}

// Resolve returns the display name for one user id.
func (c *UsernameCache) Resolve(ctx context.Context, userID string) string {
	if name, ok := c.cache.Get(userID); ok {
		return name.(string)
	}

	id, err := snowflake.Parse(userID)
	if err != nil {
		return fmt.Sprintf("User(%s)", userID)
	}

	lookupCtx, cancel := context.WithTimeout(ctx, config.UsernameLookupTimeout)
	defer cancel()

	user, err := c.client.Rest().GetUser(id, rest.WithCtx(lookupCtx))
	if err != nil {
		slog.Debug("Username lookup failed",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return fmt.Sprintf("User(%s)", userID)
	}

	name := user.EffectiveName()
	c.cache.Add(userID, name)
	return name
}

// ResolveMany resolves a batch of ids with bounded concurrency and returns
// an id -> name map. Used by the leaderboard before a page renders.
func (c *UsernameCache) ResolveMany(ctx context.Context, userIDs []string) map[string]string {
	names := make(map[string]string, len(userIDs))
	var mu sync.Mutex

	sem := semaphore.NewWeighted(maxConcurrentLookups)
	g, gctx := errgroup.WithContext(ctx)

	for _, userID := range userIDs {
		userID := userID
		g.Go(func() error {
			if err := sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			name := c.Resolve(gctx, userID)
			mu.Lock()
			names[userID] = name
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.Debug("Batch username resolution interrupted", slog.Any("error", err))
	}
	for _, userID := range userIDs {
		if _, ok := names[userID]; !ok {
			names[userID] = fmt.Sprintf("User(%s)", userID)
		}
	}
	return names
}
