package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/handler"

	"github.com/coinduelbot/coinduel/coinduel"
	"github.com/coinduelbot/coinduel/coinduel/commands"
	"github.com/coinduelbot/coinduel/coinduel/commands/economy"
	"github.com/coinduelbot/coinduel/coinduel/commands/system"
	"github.com/coinduelbot/coinduel/coinduel/database"
	"github.com/coinduelbot/coinduel/coinduel/database/repositories"
	ceconomy "github.com/coinduelbot/coinduel/coinduel/economy"
	"github.com/coinduelbot/coinduel/coinduel/economy/bonus"
	"github.com/coinduelbot/coinduel/coinduel/economy/ledger"
	"github.com/coinduelbot/coinduel/coinduel/economy/wager"
	"github.com/coinduelbot/coinduel/coinduel/handlers"
	"github.com/coinduelbot/coinduel/coinduel/logger"
	"github.com/coinduelbot/coinduel/coinduel/store"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	shouldSyncCommands := flag.Bool("sync-commands", false, "Whether to sync commands to discord")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := coinduel.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}

	slog.SetDefault(slog.New(logger.NewHandler(cfg.Log.Level)))
	slog.Info("Starting CoinDuel Discord Bot",
		slog.String("version", version),
		slog.String("commit", commit))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	b := coinduel.New(*cfg, version, commit)

	balances, claims, err := openSnapshots(ctx, b, cfg)
	if err != nil {
		logger.LogError("Failed to open storage", err)
		os.Exit(-1)
	}
	if b.DB != nil {
		defer b.DB.Close()
	}

	b.Ledger, err = ledger.New(ctx, balances)
	if err != nil {
		logger.LogError("Failed to load coin ledger", err)
		os.Exit(-1)
	}
	b.BonusGate, err = bonus.New(ctx, claims, b.Ledger)
	if err != nil {
		logger.LogError("Failed to load bonus claims", err)
		os.Exit(-1)
	}
	b.Registry = wager.NewRegistry()
	b.Settler = wager.NewSettler(b.Ledger, b.Registry)
	b.SoloGame = ceconomy.NewSoloGame(b.Ledger, cfg.Game.SoloStake)

	logger.LogSystem("Economy initialized",
		slog.Int("known_players", b.Ledger.Size()))

	h := handler.New()

	// Economy commands
	h.Command("/balance", handlers.WrapWithLogging("balance", economy.BalanceHandler(b)))
	h.Command("/bonus", handlers.WrapWithLogging("bonus", economy.BonusHandler(b)))
	h.Command("/rps", handlers.WrapWithLogging("rps", economy.RPSHandler(b)))
	h.Command("/bet", handlers.WrapWithLogging("bet", economy.BetHandler(b)))
	h.Command("/acceptbet", handlers.WrapWithLogging("acceptbet", economy.AcceptBetHandler(b)))
	h.Command("/leaderboard", handlers.WrapWithLogging("leaderboard", economy.LeaderboardHandler(b)))

	// System commands
	h.Command("/start", handlers.WrapWithLogging("start", system.StartHandler(b)))
	h.Command("/rules", handlers.WrapWithLogging("rules", system.RulesHandler(b)))
	h.Command("/help", handlers.WrapWithLogging("help", system.HelpHandler(b)))
	h.Command("/ping", handlers.WrapWithLogging("ping", system.PingHandler(b)))
	h.Command("/version", system.VersionHandler(b))

	if err = b.SetupBot(h, bot.NewListenerFunc(b.OnReady)); err != nil {
		slog.Error("Failed to setup bot",
			slog.String("type", "sys"),
			slog.Any("error", err),
			slog.String("component", "bot_setup"),
			slog.String("status", "failed"),
		)
		os.Exit(-1)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		b.Client.Close(ctx)
	}()

	if *shouldSyncCommands {
		slog.Info("Syncing commands",
			slog.String("type", "sys"),
			slog.Any("guild_ids", cfg.Bot.DevGuilds),
		)
		if err = handler.SyncCommands(b.Client, commands.Commands, cfg.Bot.DevGuilds); err != nil {
			slog.Error("Failed to sync commands",
				slog.String("type", "sys"),
				slog.Any("error", err),
				slog.String("component", "command_sync"),
				slog.String("status", "failed"),
			)
		}
	}

	gwCtx, gwCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer gwCancel()
	if err = b.Client.OpenGateway(gwCtx); err != nil {
		slog.Error("Failed to open gateway",
			slog.String("type", "sys"),
			slog.Any("error", err),
			slog.String("error_details", fmt.Sprintf("%+v", err)),
			slog.String("component", "gateway"),
			slog.String("status", "failed"),
		)
		os.Exit(-1)
	}

	logger.LogSystem("Bot is running. Press CTRL-C to exit.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s
	logger.LogSystem("Shutting down bot...")
}

// openSnapshots picks the persistence backend. With a database host
// configured, balances and bonus claims live in Postgres; otherwise
// they are JSON files under the store directory.
func openSnapshots(ctx context.Context, b *coinduel.Bot, cfg *coinduel.Config) (store.Snapshot[int64], store.Snapshot[string], error) {
	if cfg.DB.Enabled() {
		dbStart := time.Now()
		db, err := database.New(ctx, database.DBConfig{
			Host:     cfg.DB.Host,
			Port:     cfg.DB.Port,
			User:     cfg.DB.User,
			Password: cfg.DB.Password,
			Database: cfg.DB.Database,
			PoolSize: cfg.DB.PoolSize,
		})
		if err != nil {
			return nil, nil, err
		}
		if err := db.InitializeSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		slog.Info("Database connected successfully",
			slog.String("type", "db"),
			slog.String("database", cfg.DB.Database),
			slog.Duration("took", time.Since(dbStart)))

		b.DB = db
		return repositories.NewUserRepository(db.BunDB()), repositories.NewBonusClaimRepository(db.BunDB()), nil
	}

	balances, err := store.NewFileSnapshot[int64](cfg.Store.Directory, "coins.json")
	if err != nil {
		return nil, nil, err
	}
	claims, err := store.NewFileSnapshot[string](cfg.Store.Directory, "bonus_claims.json")
	if err != nil {
		return nil, nil, err
	}
	logger.LogSystem("Using file storage",
		slog.String("directory", cfg.Store.Directory))
	return balances, claims, nil
}
