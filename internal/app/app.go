package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/MadanRavuri/pg-backend/internal/repositories"
	"github.com/MadanRavuri/pg-backend/internal/utils"
)

const (
	maxConnectRetries = 5
	connectTimeout    = 5 * time.Second
	initialBackoff    = 500 * time.Millisecond
)

// App holds the process-wide resources.
type App struct {
	Pool *pgxpool.Pool
}

// New connects to Postgres with retries and runs the schema migrations.
func New(ctx context.Context, databaseURL string) (*App, error) {
	pool, err := connect(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if err := repositories.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &App{Pool: pool}, nil
}

func connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	backoff := initialBackoff
	var lastErr error
	for attempt := 1; attempt <= maxConnectRetries; attempt++ {
		connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		pool, err := pgxpool.Connect(connectCtx, databaseURL)
		cancel()
		if err == nil {
			utils.Logger.Info("Connected to database")
			return pool, nil
		}
		lastErr = err
		utils.Logger.WithField("attempt", attempt).Warnf("Database connection failed: %v", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return nil, fmt.Errorf("connect to database after %d attempts: %w", maxConnectRetries, lastErr)
}

func (a *App) Close() {
	a.Pool.Close()
}
