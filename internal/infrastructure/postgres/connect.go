package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Connect opens a pool, retrying with exponential backoff for up to
// maxElapsed while the database is unreachable. A maxElapsed of zero
// makes a single attempt. An unparseable URL is never retried.
func Connect(ctx context.Context, cfg PoolConfig, maxElapsed time.Duration, logger zerolog.Logger) (*pgxpool.Pool, error) {
	if _, err := pgxpool.ParseConfig(cfg.DatabaseURL); err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	if maxElapsed <= 0 {
		return NewPoolWithConfig(ctx, cfg)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = maxElapsed

	var pool *pgxpool.Pool
	attempt := 0

	err := backoff.RetryNotify(func() error {
		attempt++

		p, err := NewPoolWithConfig(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}, backoff.WithContext(b, ctx), func(err error, next time.Duration) {
		logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Dur("retry_in", next).
			Msg("postgres not reachable, retrying")
	})
	if err != nil {
		return nil, err
	}

	return pool, nil
}
