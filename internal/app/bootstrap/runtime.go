// Package bootstrap wires external runtime dependencies from configuration.
package bootstrap

import (
	"context"
	"crypto/tls"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	appconfig "github.com/clinicpulse/outcomes-dashboard/internal/config"
	"github.com/clinicpulse/outcomes-dashboard/internal/doctors"
	"github.com/clinicpulse/outcomes-dashboard/internal/outcomes"
	"github.com/clinicpulse/outcomes-dashboard/pkg/logging"
)

// BuildRedisClient returns a configured Redis client or nil when disabled.
// When verify is true, a ping is issued and failures return nil.
func BuildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger, verify bool) *redis.Client {
	if cfg == nil || strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	redisOptions := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(redisOptions)
	if !verify {
		return client
	}
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not available", "error", err)
		return nil
	}
	return client
}

// Repositories holds the storage layer for the API server. Pool is nil when
// running on the in-memory stores.
type Repositories struct {
	Outcomes outcomes.Repository
	Doctors  doctors.Repository
	Pool     *pgxpool.Pool
}

// Close releases the underlying connection pool, if any.
func (r *Repositories) Close() {
	if r != nil && r.Pool != nil {
		r.Pool.Close()
	}
}

// BuildRepositories connects to Postgres when DATABASE_URL is set, otherwise
// falls back to in-memory stores so the server runs without a database.
func BuildRepositories(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (*Repositories, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if cfg == nil || strings.TrimSpace(cfg.DatabaseURL) == "" {
		logger.Warn("no DATABASE_URL configured, using in-memory stores")
		return &Repositories{
			Outcomes: outcomes.NewInMemoryRepository(),
			Doctors:  doctors.NewInMemoryRepository(),
		}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &Repositories{
		Outcomes: outcomes.NewPostgresRepository(pool),
		Doctors:  doctors.NewPostgresRepository(pool),
		Pool:     pool,
	}, nil
}
