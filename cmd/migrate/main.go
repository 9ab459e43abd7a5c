package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/coinduelbot/coinduel/coinduel"
	"github.com/coinduelbot/coinduel/coinduel/database"
	"github.com/coinduelbot/coinduel/coinduel/database/repositories"
	"github.com/coinduelbot/coinduel/coinduel/logger"
	"github.com/coinduelbot/coinduel/coinduel/store"
)

// Copies balances and bonus claims from the JSON file store into
// Postgres so a deployment can switch backends without losing state.
func main() {
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := coinduel.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.SetDefault(slog.New(logger.NewHandler(cfg.Log.Level)))

	if !cfg.DB.Enabled() {
		slog.Error("No database configured, nothing to migrate to")
		os.Exit(-1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	balances, err := store.NewFileSnapshot[int64](cfg.Store.Directory, "coins.json")
	if err != nil {
		logger.LogError("Failed to open coin file", err)
		os.Exit(-1)
	}
	claims, err := store.NewFileSnapshot[string](cfg.Store.Directory, "bonus_claims.json")
	if err != nil {
		logger.LogError("Failed to open bonus claim file", err)
		os.Exit(-1)
	}

	db, err := database.New(ctx, database.DBConfig{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Database,
		PoolSize: cfg.DB.PoolSize,
	})
	if err != nil {
		logger.LogError("Failed to connect to database", err)
		os.Exit(-1)
	}
	defer db.Close()

	if err := db.InitializeSchema(ctx); err != nil {
		logger.LogError("Failed to initialize schema", err)
		os.Exit(-1)
	}

	coinData, err := balances.Load(ctx)
	if err != nil {
		logger.LogError("Failed to read coin file", err)
		os.Exit(-1)
	}
	claimData, err := claims.Load(ctx)
	if err != nil {
		logger.LogError("Failed to read bonus claim file", err)
		os.Exit(-1)
	}

	if err := repositories.NewUserRepository(db.BunDB()).Save(ctx, coinData); err != nil {
		logger.LogError("Failed to migrate balances", err)
		os.Exit(-1)
	}
	if err := repositories.NewBonusClaimRepository(db.BunDB()).Save(ctx, claimData); err != nil {
		logger.LogError("Failed to migrate bonus claims", err)
		os.Exit(-1)
	}

	slog.Info("Migration completed successfully",
		slog.String("type", "db"),
		slog.Int("balances", len(coinData)),
		slog.Int("bonus_claims", len(claimData)))
}
