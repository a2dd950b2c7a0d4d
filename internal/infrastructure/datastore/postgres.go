package datastore

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jhoicas/multistore-api/internal/domain"
	"github.com/jhoicas/multistore-api/pkg/config"
)

// newPgxPool crea el pool pgx del store. El pool es propiedad exclusiva del store
// y se cierra en Registry.Close.
func newPgxPool(ctx context.Context, cfg config.DatasourceConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: parse DSN: %v", domain.ErrConfiguration, err)
	}
	if cfg.Username != "" {
		poolConfig.ConnConfig.User = cfg.Username
	}
	if cfg.Password != "" {
		poolConfig.ConnConfig.Password = cfg.Password
	}
	if cfg.ConnectTimeout > 0 {
		poolConfig.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}

	poolConfig.MaxConns = 10
	if cfg.MaxOpenConns > 0 {
		poolConfig.MaxConns = int32(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 && int32(cfg.MaxIdleConns) <= poolConfig.MaxConns {
		poolConfig.MinConns = int32(cfg.MaxIdleConns)
	}
	poolConfig.MaxConnLifetime = time.Hour
	if cfg.ConnMaxLifetime > 0 {
		poolConfig.MaxConnLifetime = cfg.ConnMaxLifetime
	}
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: crear pool: %w", domain.ErrPersistence, err)
	}
	return pool, nil
}

// postgresDialector monta GORM sobre el pool pgx a través del puente database/sql de pgx.
func postgresDialector(ctx context.Context, cfg config.DatasourceConfig) (gorm.Dialector, func(), error) {
	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	sqlDB := stdlib.OpenDBFromPool(pool)
	return gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), pool.Close, nil
}
