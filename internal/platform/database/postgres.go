package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	maxRetries    = 10
	retryInterval = 2 * time.Second
)

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}

// NewPostgresDB opens a pool and pings it, retrying while the server comes up.
func NewPostgresDB(ctx context.Context, cfg Config, logger *zap.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var err error

	for i := 1; i <= maxRetries; i++ {
		logger.Info("Connecting to database", zap.Int("attempt", i), zap.Int("max_attempts", maxRetries))

		var db *sql.DB
		db, err = sql.Open("postgres", cfg.DSN())
		if err == nil {
			err = db.PingContext(ctx)
			if err == nil {
				db.SetMaxOpenConns(5)
				db.SetMaxIdleConns(5)
				db.SetConnMaxLifetime(5 * time.Minute)

				logger.Info("Database connected", zap.String("host", cfg.Host), zap.String("database", cfg.DBName))
				return db, nil
			}
			db.Close()
		}

		if i == maxRetries {
			break
		}

		logger.Warn("Database not ready yet", zap.Duration("retry_in", retryInterval), zap.Error(err))

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("connect to database: %w", ctx.Err())
		case <-time.After(retryInterval):
		}
	}

	return nil, fmt.Errorf("connect to database after %d attempts: %w", maxRetries, err)
}
