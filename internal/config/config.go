package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "BOMUL"

// Backend names
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendNATS   = "nats"
)

type Config struct {
	App       AppConfig
	Session   SessionConfig
	Broadcast BroadcastConfig
	Redis     RedisConfig
	NATS      NATSConfig
	Scheduler SchedulerConfig
	Password  PasswordConfig
	Seed      SeedConfig
}

// Load reads an optional .env file (or the given files) and then the
// process environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Session.Backend {
	case BackendMemory, BackendSQLite, BackendRedis:
	default:
		return fmt.Errorf("config: unknown session backend %q", c.Session.Backend)
	}
	switch c.Broadcast.Backend {
	case BackendMemory, BackendRedis, BackendNATS:
	default:
		return fmt.Errorf("config: unknown broadcast backend %q", c.Broadcast.Backend)
	}
	if c.Session.Backend == BackendSQLite && strings.TrimSpace(c.Session.SQLitePath) == "" {
		return fmt.Errorf("config: sqlite session backend requires %s", "BOMUL_SESSION_SQLITE_PATH")
	}
	return nil
}

type AppConfig struct {
	Env      string `envconfig:"BOMUL_APP_ENV" default:"dev"`
	Port     string `envconfig:"BOMUL_APP_PORT" default:"8080"`
	LogLevel string `envconfig:"BOMUL_LOG_LEVEL" default:"info"`
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, "prod") || strings.EqualFold(a.Env, "production")
}

// Addr is the listen address for the HTTP server
func (a AppConfig) Addr() string {
	if strings.HasPrefix(a.Port, ":") {
		return a.Port
	}
	return ":" + a.Port
}

type SessionConfig struct {
	Backend    string `envconfig:"BOMUL_SESSION_BACKEND" default:"memory"`
	SQLitePath string `envconfig:"BOMUL_SESSION_SQLITE_PATH" default:"bomul_session.db"`
	Namespace  string `envconfig:"BOMUL_SESSION_NAMESPACE" default:"bomul"`
}

type BroadcastConfig struct {
	Backend string `envconfig:"BOMUL_BROADCAST_BACKEND" default:"memory"`
	Channel string `envconfig:"BOMUL_BROADCAST_CHANNEL" default:"bomul_auction_updates"`
}

type RedisConfig struct {
	Addr     string `envconfig:"BOMUL_REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"BOMUL_REDIS_PASSWORD"`
	DB       int    `envconfig:"BOMUL_REDIS_DB" default:"0"`
}

type NATSConfig struct {
	URL        string `envconfig:"BOMUL_NATS_URL" default:"nats://localhost:4222"`
	ClientName string `envconfig:"BOMUL_NATS_CLIENT_NAME" default:"bomul-market"`
}

type SchedulerConfig struct {
	ExpiryInterval   time.Duration `envconfig:"BOMUL_EXPIRY_INTERVAL" default:"30s"`
	RolloverInterval time.Duration `envconfig:"BOMUL_ROLLOVER_INTERVAL" default:"1h"`
}

type PasswordConfig struct {
	BcryptCost int `envconfig:"BOMUL_BCRYPT_COST" default:"10"`
}

type SeedConfig struct {
	Enabled bool `envconfig:"BOMUL_SEED_ENABLED" default:"true"`
}
