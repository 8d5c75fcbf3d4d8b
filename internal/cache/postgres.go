package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JonMunkholm/elc/internal/config"
	"github.com/JonMunkholm/elc/internal/election"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

const postgresSchema = `CREATE TABLE IF NOT EXISTS election_cache (
	year       INTEGER PRIMARY KEY,
	dataset    JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresCache stores datasets as JSONB rows in election_cache.
type PostgresCache struct {
	db   DBTX
	pool *pgxpool.Pool
	sq   sq.StatementBuilderType
}

// OpenPostgres connects a pool using cfg and ensures the table exists.
func OpenPostgres(ctx context.Context, cfg config.CacheConfig) (*PostgresCache, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MinConns = int32(cfg.MinConns)
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	c := NewPostgresCache(pool)
	c.pool = pool
	if err := c.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return c, nil
}

// NewPostgresCache wraps an existing connection or transaction. The caller
// keeps ownership of db.
func NewPostgresCache(db DBTX) *PostgresCache {
	return &PostgresCache{
		db: db,
		sq: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Migrate creates the cache table if needed.
func (c *PostgresCache) Migrate(ctx context.Context) error {
	if _, err := c.db.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("create election_cache: %w", err)
	}
	return nil
}

func (c *PostgresCache) Get(ctx context.Context, year int) (election.Dataset, error) {
	var d election.Dataset

	query, args, err := c.sq.Select("dataset").
		From("election_cache").
		Where(sq.Eq{"year": year}).
		ToSql()
	if err != nil {
		return d, fmt.Errorf("build cache query: %w", err)
	}

	var raw []byte
	if err := c.db.QueryRow(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return d, ErrMiss
		}
		return d, fmt.Errorf("read cache %d: %w", year, err)
	}

	if err := json.Unmarshal(raw, &d); err != nil {
		return d, fmt.Errorf("decode cache %d: %w", year, err)
	}
	return d, nil
}

func (c *PostgresCache) Put(ctx context.Context, year int, d election.Dataset) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode cache %d: %w", year, err)
	}

	query, args, err := c.sq.Insert("election_cache").
		Columns("year", "dataset", "updated_at").
		Values(year, string(data), sq.Expr("now()")).
		Suffix("ON CONFLICT (year) DO UPDATE SET dataset = EXCLUDED.dataset, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build cache insert: %w", err)
	}

	if _, err := c.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("write cache %d: %w", year, err)
	}
	return nil
}

func (c *PostgresCache) Years(ctx context.Context) ([]int, error) {
	query, args, err := c.sq.Select("year").
		From("election_cache").
		OrderBy("year DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build cache query: %w", err)
	}

	rows, err := c.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cache: %w", err)
	}
	years, err := pgx.CollectRows(rows, pgx.RowTo[int32])
	if err != nil {
		return nil, fmt.Errorf("list cache: %w", err)
	}

	out := make([]int, len(years))
	for i, y := range years {
		out[i] = int(y)
	}
	return out, nil
}

func (c *PostgresCache) Purge(ctx context.Context) error {
	query, args, err := c.sq.Delete("election_cache").ToSql()
	if err != nil {
		return fmt.Errorf("build cache delete: %w", err)
	}
	if _, err := c.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("purge cache: %w", err)
	}
	return nil
}

// Close closes the pool when the cache opened it.
func (c *PostgresCache) Close() error {
	if c.pool != nil {
		c.pool.Close()
	}
	return nil
}
