package config

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"

	"github.com/anchal00/gamesave/internal/logger"
)

// Supported database/sql driver names.
const (
	DriverSqlite3  = "sqlite3"
	DriverSqlite   = "sqlite"
	DriverPostgres = "pgx"
)

var (
	SupportedDrivers = []string{DriverSqlite3, DriverSqlite, DriverPostgres}

	ErrMissingAuthorizationKey = errors.New("authorization key is required")
)

// Config is everything the hosting environment supplies to the server.
type Config struct {
	Port             string        `env:"GAMESAVE_PORT" envDefault:"8080"`
	AuthorizationKey string        `env:"GAMESAVE_AUTHORIZATION_KEY"`
	DBDriver         string        `env:"GAMESAVE_DB_DRIVER" envDefault:"sqlite3"`
	DB               string        `env:"GAMESAVE_DB" envDefault:"gamesave.db"`
	TableNamePattern string        `env:"GAMESAVE_TABLE_NAME_PATTERN"`
	CacheTables      bool          `env:"GAMESAVE_CACHE_TABLES" envDefault:"true"`
	RequestLogging   bool          `env:"GAMESAVE_REQUEST_LOGGING" envDefault:"true"`
	ShutdownTimeout  time.Duration `env:"GAMESAVE_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	MaxBodyBytes     int64         `env:"GAMESAVE_MAX_BODY_BYTES" envDefault:"1048576"`
	LogFormat        string        `env:"GAMESAVE_LOG_FORMAT" envDefault:"text"`
	LogLevel         int           `env:"GAMESAVE_LOG_LEVEL" envDefault:"0"`
}

// Load parses the process environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.AuthorizationKey == "" {
		return ErrMissingAuthorizationKey
	}
	if c.Port == "" {
		return errors.New("port is required")
	}
	if !slices.Contains(SupportedDrivers, c.DBDriver) {
		return fmt.Errorf("unsupported database driver %q, must be one of %v", c.DBDriver, SupportedDrivers)
	}
	if c.DB == "" {
		return errors.New("database name is required")
	}
	if _, err := c.TableNameRegexp(); err != nil {
		return err
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}
	if c.MaxBodyBytes <= 0 {
		return errors.New("max body bytes must be positive")
	}
	switch logger.Format(c.LogFormat) {
	case logger.TextFormat, logger.JSONFormat, "":
	default:
		return fmt.Errorf("unrecognised logging format: %s", c.LogFormat)
	}
	return nil
}

// TableNameRegexp compiles the game name allow-list. A nil regexp means every
// game name is accepted.
func (c *Config) TableNameRegexp() (*regexp.Regexp, error) {
	if c.TableNamePattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(c.TableNamePattern)
	if err != nil {
		return nil, fmt.Errorf("invalid table name pattern: %w", err)
	}
	return re, nil
}

func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{Format: c.LogFormat, Verbosity: c.LogLevel}
}

// LoadFromFlags registers flags on the given flagset. Each flag defaults to
// the value already in cfg, so flags set on the command line take precedence
// over the environment.
func LoadFromFlags(flags *pflag.FlagSet, cfg *Config) {
	flags.StringVar(&cfg.Port, "port", cfg.Port, "Port to listen on")
	flags.StringVar(&cfg.AuthorizationKey, "authorization-key", cfg.AuthorizationKey, "Shared secret clients must send in the Authorization header")
	flags.StringVar(&cfg.DBDriver, "db-driver", cfg.DBDriver, fmt.Sprintf("Database driver, one of %v", SupportedDrivers))
	flags.StringVar(&cfg.DB, "db", cfg.DB, "Database file (sqlite) or connection string (pgx)")
	flags.StringVar(&cfg.TableNamePattern, "table-name-pattern", cfg.TableNamePattern, "Regular expression game names must match; empty accepts any name")
	flags.BoolVar(&cfg.CacheTables, "cache-tables", cfg.CacheTables, "Skip table creation for games already provisioned by this process")
	flags.BoolVar(&cfg.RequestLogging, "request-logging", cfg.RequestLogging, "Log every request")
	flags.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "Time given to outstanding requests on shutdown")
	flags.Int64Var(&cfg.MaxBodyBytes, "max-body-bytes", cfg.MaxBodyBytes, "Largest save body accepted, in bytes")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Logging format: text or json")
	flags.IntVarP(&cfg.LogLevel, "v", "v", cfg.LogLevel, "Logging level")
}
