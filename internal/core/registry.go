package core

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry   = make(map[string]KindInfo)
	registryMu sync.RWMutex
)

// Register adds a record kind to the registry.
// Panics if a kind with the same key is already registered.
func Register(info KindInfo) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[info.Key]; exists {
		panic(fmt.Sprintf("kind already registered: %s", info.Key))
	}
	if info.GroupSize < 1 {
		panic(fmt.Sprintf("kind %s: group size must be at least 1", info.Key))
	}

	registry[info.Key] = info
}

// Get returns a kind by key.
// Returns false if not found.
func Get(key string) (KindInfo, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	info, ok := registry[key]
	return info, ok
}

// All returns all registered kinds sorted by key.
func All() []KindInfo {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]KindInfo, 0, len(registry))
	for _, info := range registry {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})

	return result
}

// Keys returns the registered kind keys, sorted.
func Keys() []string {
	kinds := All()
	keys := make([]string, len(kinds))
	for i, k := range kinds {
		keys[i] = k.Key
	}
	return keys
}

// KindCount returns the number of registered kinds.
func KindCount() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// Clear removes all registered kinds.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]KindInfo)
}
