package coinduel

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/disgoorg/snowflake/v2"
	"github.com/pelletier/go-toml/v2"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	cfg := defaultConfig()
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaultConfig() Config {
	return Config{
		Store: StoreConfig{Directory: "data"},
		Game:  GameConfig{SoloStake: 10},
	}
}

type Config struct {
	Log   LogConfig   `toml:"log"`
	Bot   BotConfig   `toml:"bot"`
	DB    DBConfig    `toml:"db"`
	Store StoreConfig `toml:"store"`
	Game  GameConfig  `toml:"game"`
}

type BotConfig struct {
	DevGuilds []snowflake.ID `toml:"dev_guilds"`
	Token     string         `toml:"token"`
}

type LogConfig struct {
	Level slog.Level `toml:"level"`
}

// DBConfig selects the Postgres snapshot backend when Host is set;
// otherwise balances and bonus claims live in JSON files under
// Store.Directory.
type DBConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
	PoolSize int    `toml:"pool_size"`
}

func (c DBConfig) Enabled() bool {
	return c.Host != ""
}

type StoreConfig struct {
	Directory string `toml:"directory"`
}

type GameConfig struct {
	SoloStake int64 `toml:"solo_stake"`
}
