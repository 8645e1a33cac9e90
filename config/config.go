package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage drivers accepted by database.driver.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres, memory
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	Migrate         bool          `mapstructure:"migrate"` // apply schema.sql on startup
	LockTimeout     time.Duration `mapstructure:"lock_timeout"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type KafkaConfig struct {
	Enabled  bool     `mapstructure:"enabled"`
	Brokers  []string `mapstructure:"brokers"`
	Topic    string   `mapstructure:"topic"`
	ClientID string   `mapstructure:"client_id"`
}

type LedgerConfig struct {
	DefaultTimezone string        `mapstructure:"default_timezone"` // used when a company has none
	CompanyCacheTTL time.Duration `mapstructure:"company_cache_ttl"`
	IdempotencyTTL  time.Duration `mapstructure:"idempotency_ttl"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CWL_ (Cash Wallet Ledger).
// Nested keys use underscore: CWL_DATABASE_HOST, CWL_KAFKA_BROKERS, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "cash_ledger")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.migrate", false)
	v.SetDefault("database.lock_timeout", "5s")
	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "cash-wallet-ledger")
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "cash-ledger.audit")
	v.SetDefault("kafka.client_id", "cash-wallet-ledger")
	v.SetDefault("ledger.default_timezone", "UTC")
	v.SetDefault("ledger.company_cache_ttl", "5m")
	v.SetDefault("ledger.idempotency_ttl", "24h")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: CWL_DATABASE_HOST -> database.host
	v.SetEnvPrefix("CWL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required; env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if _, err := time.LoadLocation(c.Ledger.DefaultTimezone); err != nil {
		return fmt.Errorf("invalid ledger.default_timezone: %w", err)
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.enabled requires at least one broker")
	}
	return nil
}
