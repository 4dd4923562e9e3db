package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Storage drivers
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Rent      RentConfig
}

type ServerConfig struct {
	GRPCPort string `env:"GRPC_PORT" envDefault:":8080"`
	HTTPPort string `env:"HTTP_PORT" envDefault:"8081"`
	APIToken string `env:"API_TOKEN" envDefault:"dev-token"`
}

type StorageConfig struct {
	Driver     string `env:"STORAGE_DRIVER" envDefault:"memory"`
	DBConnStr  string `env:"DB_CONN_STR"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"homedecide"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"data/homedecide.db"`
}

type CacheConfig struct {
	RedisAddr string        `env:"REDIS_ADDR"` // empty selects the in-memory cache
	TTL       time.Duration `env:"CACHE_TTL" envDefault:"10m"`
}

type RateLimitConfig struct {
	Capacity int           `env:"RATE_LIMIT_CAPACITY" envDefault:"60"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
}

type RentConfig struct {
	DataCSV            string  `env:"RENT_DATA_CSV"`
	DefaultMonthlyRent float64 `env:"DEFAULT_MONTHLY_RENT" envDefault:"1800"`
}

func ReadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse .env file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks values env.Parse cannot
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres, StorageSQLite:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if c.RateLimit.Capacity <= 0 {
		return fmt.Errorf("RATE_LIMIT_CAPACITY must be positive, got %d", c.RateLimit.Capacity)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.RateLimit.Window)
	}
	if c.Rent.DefaultMonthlyRent <= 0 {
		return fmt.Errorf("DEFAULT_MONTHLY_RENT must be positive, got %v", c.Rent.DefaultMonthlyRent)
	}
	return nil
}

// PostgresConnString returns DB_CONN_STR, or builds one from the individual DB_* values
func (c StorageConfig) PostgresConnString() string {
	if c.DBConnStr != "" {
		return c.DBConnStr
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}
