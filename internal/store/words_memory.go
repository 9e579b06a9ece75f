// internal/store/words_memory.go
//
// In-memory Words implementation for tests and for running without a
// database file. Concurrency-safe via RWMutex.

package store

import (
	"context"
	"crypto/rand"
	"math/big"
	"sort"
	"sync"
)

// MemoryWords keeps both pools in maps.
type MemoryWords struct {
	mu    sync.RWMutex
	pools map[Pool]map[string]struct{}
}

// NewMemoryWords returns a store whose dictionary holds dict.
func NewMemoryWords(dict []string) *MemoryWords {
	m := &MemoryWords{pools: map[Pool]map[string]struct{}{
		Dictionary: {},
		Custom:     {},
	}}
	for _, w := range dict {
		m.pools[Dictionary][w] = struct{}{}
	}
	return m
}

func (m *MemoryWords) set(pool Pool) (map[string]struct{}, error) {
	if _, err := pool.table(); err != nil {
		return nil, err
	}
	return m.pools[pool], nil
}

// RandomWord returns a cryptographically random word from pool.
func (m *MemoryWords) RandomWord(ctx context.Context, pool Pool) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	set, err := m.set(pool)
	if err != nil {
		return "", err
	}
	if len(set) == 0 {
		return "", ErrEmptyPool
	}
	list := sortedKeys(set)
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	return list[nBig.Int64()], nil
}

// HasWord reports membership of word in pool.
func (m *MemoryWords) HasWord(ctx context.Context, pool Pool, word string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	set, err := m.set(pool)
	if err != nil {
		return false, err
	}
	_, ok := set[word]
	return ok, nil
}

// AddCustom inserts word into the custom pool.
func (m *MemoryWords) AddCustom(ctx context.Context, word string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pools[Custom][word]; ok {
		return false, nil
	}
	m.pools[Custom][word] = struct{}{}
	return true, nil
}

// DeleteCustom removes word from the custom pool.
func (m *MemoryWords) DeleteCustom(ctx context.Context, word string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pools[Custom][word]; !ok {
		return false, nil
	}
	delete(m.pools[Custom], word)
	return true, nil
}

// ListCustom returns the custom pool in alphabetical order.
func (m *MemoryWords) ListCustom(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedKeys(m.pools[Custom]), nil
}

// Count returns the size of pool.
func (m *MemoryWords) Count(ctx context.Context, pool Pool) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	set, err := m.set(pool)
	if err != nil {
		return 0, err
	}
	return len(set), nil
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
