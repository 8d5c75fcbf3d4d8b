package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/JonMunkholm/elc/internal/election"
)

// FileCache keeps one indented JSON file per year in a directory.
type FileCache struct {
	dir string
}

// NewFileCache returns a cache rooted at dir. The directory is created on
// first write.
func NewFileCache(dir string) *FileCache {
	return &FileCache{dir: dir}
}

func (c *FileCache) path(year int) string {
	return filepath.Join(c.dir, strconv.Itoa(year)+".json")
}

// Get reads <dir>/<year>.json.
func (c *FileCache) Get(_ context.Context, year int) (election.Dataset, error) {
	var d election.Dataset

	data, err := os.ReadFile(c.path(year))
	if errors.Is(err, fs.ErrNotExist) {
		return d, ErrMiss
	}
	if err != nil {
		return d, fmt.Errorf("read cache %d: %w", year, err)
	}

	if err := json.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("decode cache %d: %w", year, err)
	}
	return d, nil
}

// Put writes the dataset to a temporary file and renames it into place so
// readers never see a partial entry.
func (c *FileCache) Put(_ context.Context, year int, d election.Dataset) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache %d: %w", year, err)
	}

	tmp, err := os.CreateTemp(c.dir, strconv.Itoa(year)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write cache %d: %w", year, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write cache %d: %w", year, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write cache %d: %w", year, err)
	}

	if err := os.Rename(tmp.Name(), c.path(year)); err != nil {
		return fmt.Errorf("write cache %d: %w", year, err)
	}
	return nil
}

// Years lists the years with a cache file.
func (c *FileCache) Years(_ context.Context) ([]int, error) {
	entries, err := os.ReadDir(c.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list cache: %w", err)
	}

	var years []int
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), ".json")
		if !ok || e.IsDir() {
			continue
		}
		if y, err := strconv.Atoi(name); err == nil {
			years = append(years, y)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

// Purge removes the cache directory and everything in it.
func (c *FileCache) Purge(_ context.Context) error {
	if err := os.RemoveAll(c.dir); err != nil {
		return fmt.Errorf("purge cache: %w", err)
	}
	return nil
}

// Close is a no-op.
func (c *FileCache) Close() error { return nil }
