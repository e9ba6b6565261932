// Package postgres opens pooled sqlx connections over the pgx driver and
// applies schema migrations.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const driverName = "pgx"

type poolConfig struct {
	connMaxIdleTime time.Duration
	connMaxLifetime time.Duration
	maxIdleConns    int
	maxOpenConns    int
}

var defaultPoolConfig = poolConfig{
	connMaxIdleTime: 5 * time.Minute,
	connMaxLifetime: 30 * time.Minute,
	maxIdleConns:    5,
	maxOpenConns:    25,
}

type Option func(*poolConfig)

func WithConnMaxIdleTime(d time.Duration) Option {
	return func(c *poolConfig) {
		if d > 0 {
			c.connMaxIdleTime = d
		}
	}
}

func WithConnMaxLifetime(d time.Duration) Option {
	return func(c *poolConfig) {
		if d > 0 {
			c.connMaxLifetime = d
		}
	}
}

func WithMaxIdleConns(n int) Option {
	return func(c *poolConfig) {
		if n > 0 {
			c.maxIdleConns = n
		}
	}
}

func WithMaxOpenConns(n int) Option {
	return func(c *poolConfig) {
		if n > 0 {
			c.maxOpenConns = n
		}
	}
}

// New connects to the database and verifies the connection. Zero-valued
// options keep the pool defaults.
func New(ctx context.Context, dsn string, opts ...Option) (*sqlx.DB, error) {
	const op = "postgres.New"

	cfg := defaultPoolConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	db, err := sqlx.ConnectContext(ctx, driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect to database: %w", op, err)
	}

	db.SetConnMaxIdleTime(cfg.connMaxIdleTime)
	db.SetConnMaxLifetime(cfg.connMaxLifetime)
	db.SetMaxIdleConns(cfg.maxIdleConns)
	db.SetMaxOpenConns(cfg.maxOpenConns)

	return db, nil
}
