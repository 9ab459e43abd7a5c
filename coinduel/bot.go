package coinduel

import (
	"context"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/paginator"

	"github.com/coinduelbot/coinduel/coinduel/database"
	"github.com/coinduelbot/coinduel/coinduel/economy"
	"github.com/coinduelbot/coinduel/coinduel/economy/bonus"
	"github.com/coinduelbot/coinduel/coinduel/economy/ledger"
	"github.com/coinduelbot/coinduel/coinduel/economy/wager"
	"github.com/coinduelbot/coinduel/coinduel/services"
)

func New(cfg Config, version string, commit string) *Bot {
	return &Bot{
		Cfg:       cfg,
		Paginator: paginator.New(),
		Version:   version,
		Commit:    commit,
	}
}

type Bot struct {
	Cfg       Config
	Client    bot.Client
	Paginator *paginator.Manager
	Version   string
	Commit    string

	DB *database.DB // nil when running on the file store

	Ledger    *ledger.Ledger
	BonusGate *bonus.Gate
	Registry  *wager.Registry
	Settler   *wager.Settler
	SoloGame  *economy.SoloGame
	Usernames *services.UsernameCache
}

func (b *Bot) SetupBot(listeners ...bot.EventListener) error {
	client, err := disgo.New(b.Cfg.Bot.Token,
		bot.WithGatewayConfigOpts(gateway.WithIntents(gateway.IntentGuilds)),
		bot.WithCacheConfigOpts(cache.WithCaches(cache.FlagGuilds)),
		bot.WithEventListeners(b.Paginator),
		bot.WithEventListeners(listeners...),
	)
	if err != nil {
		return err
	}

	b.Client = client
	b.Usernames = services.NewUsernameCache(client)
	return nil
}

func (b *Bot) OnReady(_ *events.Ready) {
	slog.Info("CoinDuel bot is now ready",
		slog.String("version", b.Version),
		slog.String("commit", b.Commit))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := b.Client.SetPresence(ctx,
		gateway.WithPlayingActivity("rock paper scissors for coins"),
		gateway.WithOnlineStatus(discord.OnlineStatusOnline)); err != nil {
		slog.Error("Failed to set presence", slog.Any("error", err))
	}
}
