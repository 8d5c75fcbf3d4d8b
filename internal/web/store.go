package web

import (
	"fmt"
	"sync"

	"github.com/JonMunkholm/elc/internal/election"
)

// Store holds the datasets the API serves.
type Store struct {
	mu      sync.RWMutex
	results election.Results
}

// NewStore returns a Store seeded with results. The map is copied.
func NewStore(results election.Results) *Store {
	s := &Store{results: make(election.Results, len(results))}
	for y, d := range results {
		s.Set(y, d)
	}
	return s
}

// Set adds or replaces the dataset for year.
func (s *Store) Set(year int, d election.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[year] = d
}

// Get returns the dataset for year.
func (s *Store) Get(year int) (election.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.results[year]
	if !ok {
		return election.Dataset{}, fmt.Errorf("election not found: %d", year)
	}
	return d, nil
}

// Years returns the loaded years, newest first.
func (s *Store) Years() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.results.Years()
}
