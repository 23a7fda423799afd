package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool bounds: a small connection ceiling, no idle floor, idle connections
// reclaimed after ten seconds, thirty seconds to establish a connection.
const (
	poolMaxConns        = 20
	poolMinConns        = 0
	poolMaxConnIdleTime = 10 * time.Second
	poolConnectTimeout  = 30 * time.Second
)

// NewPgxPool builds a bounded pgx connection pool from a postgres URL.
func NewPgxPool(ctx context.Context, url string) (DB, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = poolMaxConns
	cfg.MinConns = poolMinConns
	cfg.MaxConnIdleTime = poolMaxConnIdleTime
	cfg.ConnConfig.ConnectTimeout = poolConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return pool, nil
}
