package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ytget/movie-form/internal/logging"
	"github.com/ytget/movie-form/internal/platform"
	"github.com/ytget/movie-form/internal/store"
)

// EnvPrefix prefixes every environment override, e.g. MOVIEFORM_STORE_DSN
const EnvPrefix = "MOVIEFORM"

// Config is the bootstrap configuration read before the window opens
type Config struct {
	Store StoreConfig `mapstructure:"store"`
	Log   LogConfig   `mapstructure:"log"`
}

// StoreConfig selects the movie store
type StoreConfig struct {
	// Driver is "memory" or "postgres"
	Driver       string        `mapstructure:"driver"`
	DSN          string        `mapstructure:"dsn"`
	MaxOpenConns int           `mapstructure:"max_open_conns"`
	MaxIdleConns int           `mapstructure:"max_idle_conns"`
	MaxIdleTime  time.Duration `mapstructure:"max_idle_time"`
	// Timeout bounds each store call made from the UI
	Timeout time.Duration `mapstructure:"timeout"`
}

// LogConfig controls logger output
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Driver:       store.DriverMemory,
			MaxOpenConns: 4,
			MaxIdleConns: 4,
			MaxIdleTime:  15 * time.Minute,
			Timeout:      3 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: logging.FormatConsole,
		},
	}
}

// SetDefaults registers Default values on v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("store.driver", defaults.Store.Driver)
	v.SetDefault("store.dsn", defaults.Store.DSN)
	v.SetDefault("store.max_open_conns", defaults.Store.MaxOpenConns)
	v.SetDefault("store.max_idle_conns", defaults.Store.MaxIdleConns)
	v.SetDefault("store.max_idle_time", defaults.Store.MaxIdleTime)
	v.SetDefault("store.timeout", defaults.Store.Timeout)

	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
}

// ConfigDir returns the directory searched for config.yaml
func ConfigDir() string {
	dir, err := platform.GetConfigDir()
	if err != nil {
		return "."
	}
	return dir
}

// Load reads configuration into v from cfgFile (or config.yaml in ConfigDir) and
// the environment, then decodes and validates it. A missing default file is not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	// MOVIEFORM_STORE_DSN for store.dsn
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values that would fail at startup
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case store.DriverMemory:
	case store.DriverPostgres:
		if c.Store.DSN == "" {
			return fmt.Errorf("store.dsn is required for the %s driver", store.DriverPostgres)
		}
	default:
		return fmt.Errorf("unknown store driver: %q", c.Store.Driver)
	}

	if c.Store.Timeout <= 0 {
		return fmt.Errorf("store.timeout must be positive, got %s", c.Store.Timeout)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// StoreOptions converts the store section into store.Config
func (c *Config) StoreOptions() store.Config {
	return store.Config{
		Driver:       c.Store.Driver,
		DSN:          c.Store.DSN,
		MaxOpenConns: c.Store.MaxOpenConns,
		MaxIdleConns: c.Store.MaxIdleConns,
		MaxIdleTime:  c.Store.MaxIdleTime,
	}
}

// ConfigFilePath returns the default config file location
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
