// Package cache persists decoded election datasets keyed by year so a
// re-run can skip the download and decode.
//
// Three backends share one interface: JSON files on disk (the default),
// PostgreSQL, and SQLite. All store the dataset as JSON using the field
// names of the election package.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/JonMunkholm/elc/internal/config"
	"github.com/JonMunkholm/elc/internal/election"
)

// ErrMiss is returned by Get when no dataset is cached for the year.
var ErrMiss = errors.New("cache miss")

// Cache stores decoded datasets by election year.
type Cache interface {
	// Get returns the cached dataset, or ErrMiss.
	Get(ctx context.Context, year int) (election.Dataset, error)

	// Put stores a dataset, replacing any previous entry for the year.
	Put(ctx context.Context, year int, d election.Dataset) error

	// Years lists cached years, newest first.
	Years(ctx context.Context) ([]int, error)

	// Purge removes every entry.
	Purge(ctx context.Context) error

	// Close releases any resources held by the backend.
	Close() error
}

// Open returns the backend selected by cfg.Backend.
func Open(ctx context.Context, cfg config.CacheConfig) (Cache, error) {
	switch strings.ToLower(cfg.Backend) {
	case config.BackendFile, "":
		return NewFileCache(cfg.Dir), nil
	case config.BackendPostgres:
		c, err := OpenPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.BackendSQLite:
		c, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
