package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/JonMunkholm/elc/internal/election"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS election_cache (
	year       INTEGER PRIMARY KEY,
	dataset    TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

// SQLiteCache stores datasets as JSON text in a local SQLite database.
type SQLiteCache struct {
	db *sql.DB
	sq sq.StatementBuilderType
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteCache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("make db dir: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA busy_timeout = 5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("pragma %q: %w", p, err)
		}
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create election_cache: %w", err)
	}

	return &SQLiteCache{db: db, sq: sq.StatementBuilder}, nil
}

func (c *SQLiteCache) Get(ctx context.Context, year int) (election.Dataset, error) {
	var d election.Dataset

	query, args, err := c.sq.Select("dataset").
		From("election_cache").
		Where(sq.Eq{"year": year}).
		ToSql()
	if err != nil {
		return d, fmt.Errorf("build cache query: %w", err)
	}

	var raw string
	if err := c.db.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return d, ErrMiss
		}
		return d, fmt.Errorf("read cache %d: %w", year, err)
	}

	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return d, fmt.Errorf("decode cache %d: %w", year, err)
	}
	return d, nil
}

func (c *SQLiteCache) Put(ctx context.Context, year int, d election.Dataset) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode cache %d: %w", year, err)
	}

	query, args, err := c.sq.Insert("election_cache").
		Columns("year", "dataset", "updated_at").
		Values(year, string(data), time.Now().UTC().Format(time.RFC3339)).
		Suffix("ON CONFLICT(year) DO UPDATE SET dataset=excluded.dataset, updated_at=excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build cache insert: %w", err)
	}

	if _, err := c.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("write cache %d: %w", year, err)
	}
	return nil
}

func (c *SQLiteCache) Years(ctx context.Context) ([]int, error) {
	query, args, err := c.sq.Select("year").
		From("election_cache").
		OrderBy("year DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build cache query: %w", err)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cache: %w", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("list cache: %w", err)
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

func (c *SQLiteCache) Purge(ctx context.Context) error {
	query, args, err := c.sq.Delete("election_cache").ToSql()
	if err != nil {
		return fmt.Errorf("build cache delete: %w", err)
	}
	if _, err := c.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("purge cache: %w", err)
	}
	return nil
}

// Close closes the database.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
