package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/srgjo27/attraction_wishlist/internal/platform/database"
	"github.com/srgjo27/attraction_wishlist/internal/platform/validator"
)

const (
	StoreFile     = "file"
	StoreRedis    = "redis"
	StorePostgres = "postgres"

	appDirName = "attraction_wishlist"
)

// Config holds all configuration for the wishlist CLI.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFile     string `env:"LOG_FILE"`

	// Catalog. An empty CatalogDir serves the bundled catalog.
	CatalogDir  string `env:"CATALOG_DIR"`
	CatalogName string `env:"CATALOG_NAME" envDefault:"offerings" validate:"required"`

	// Wishlist persistence
	Store        string `env:"WISHLIST_STORE" envDefault:"file" validate:"oneof=file redis postgres"`
	DataDir      string `env:"WISHLIST_DATA_DIR"`
	WishlistFile string `env:"WISHLIST_FILE" envDefault:"wishlist.json" validate:"required"`

	// Redis
	RedisHost string `env:"REDIS_HOST" envDefault:"localhost" validate:"required"`
	RedisPort int    `env:"REDIS_PORT" envDefault:"6379" validate:"min=1,max=65535"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0" validate:"gte=0"`
	RedisKey  string `env:"REDIS_KEY" envDefault:"wishlist:attractions" validate:"required"`

	// PostgreSQL
	DBHost     string `env:"DB_HOST" envDefault:"localhost" validate:"required"`
	DBPort     int    `env:"DB_PORT" envDefault:"5432" validate:"min=1,max=65535"`
	DBUser     string `env:"DB_USER" envDefault:"postgres" validate:"required"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"attraction_wishlist" validate:"required"`
}

// Load reads an optional dotenv file, then environment variables. A missing
// dotenv file is not an error. Variables already set in the environment win
// over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// ResolveDataDir returns WISHLIST_DATA_DIR, or the per-user config directory
// when it is unset.
func (c *Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve data directory: %w", err)
	}

	return filepath.Join(base, appDirName), nil
}

// WishlistPath is the file backing the file store.
func (c *Config) WishlistPath() (string, error) {
	dir, err := c.ResolveDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, c.WishlistFile), nil
}

func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

func (c *Config) Database() database.Config {
	return database.Config{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
	}
}
