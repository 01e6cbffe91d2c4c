package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Supported store drivers
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Config selects and configures a store implementation
type Config struct {
	Driver       string
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

// Open creates the store named by cfg.Driver
func Open(ctx context.Context, cfg Config, logger zerolog.Logger) (Store, error) {
	switch cfg.Driver {
	case "", DriverMemory:
		logger.Info().Str("driver", DriverMemory).Msg("opening store")
		return NewMemoryStore(logger), nil
	case DriverPostgres:
		logger.Info().Str("driver", DriverPostgres).Msg("opening store")
		return OpenPostgres(ctx, PostgresOptions{
			DSN:          cfg.DSN,
			MaxOpenConns: cfg.MaxOpenConns,
			MaxIdleConns: cfg.MaxIdleConns,
			MaxIdleTime:  cfg.MaxIdleTime,
		}, logger)
	default:
		return nil, fmt.Errorf("unknown store driver: %q", cfg.Driver)
	}
}
