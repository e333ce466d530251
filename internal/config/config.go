// Package config loads the server configuration from SHEET_* environment
// variables.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/logging"
)

const (
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Config is the full server configuration
type Config struct {
	GRPCPort int `env:"SHEET_GRPC_PORT" envDefault:"50051"`

	Store      string `env:"SHEET_STORE" envDefault:"redis"`
	RedisAddr  string `env:"SHEET_REDIS_ADDR" envDefault:"localhost:6379"`
	SQLitePath string `env:"SHEET_SQLITE_PATH" envDefault:"rpg-sheet.db"`

	// CatalogPath is a YAML file of content tables. Empty means no content.
	CatalogPath string `env:"SHEET_CATALOG_PATH"`

	RollLogTTL time.Duration `env:"SHEET_ROLL_LOG_TTL" envDefault:"24h"`
	RollLogMax int           `env:"SHEET_ROLL_LOG_MAX" envDefault:"50"`

	Log logging.Config `envPrefix:"SHEET_LOG_"`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and the store-specific settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("GRPCPort", c.GRPCPort, 1, 65535, vb)
	errors.ValidateEnum("Store", c.Store, []string{StoreRedis, StoreSQLite}, vb)

	switch c.Store {
	case StoreRedis:
		errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	case StoreSQLite:
		errors.ValidateRequired("SQLitePath", c.SQLitePath, vb)
	}

	if c.RollLogTTL < 0 {
		vb.Field("RollLogTTL", "must not be negative")
	}
	if c.RollLogMax < 0 {
		vb.Field("RollLogMax", "must not be negative")
	}

	if err := c.Log.Validate(); err != nil {
		vb.Field("Log", errors.GetMessage(err))
	}

	return vb.Build()
}
