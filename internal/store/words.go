// internal/store/words.go
//
// Word storage interface shared by the SQLite and in-memory backends.
//
// Two pools:
//   - Dictionary: valid words, secret pool in Default mode and the
//     membership check for every guess.
//   - Custom: user-maintained secret pool for Custom mode.

package store

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrUnavailable wraps every storage fault (missing or unreadable file,
	// broken schema). Callers degrade to a safe default.
	ErrUnavailable = errors.New("word storage unavailable")
	// ErrEmptyPool is returned by RandomWord when the pool has no words.
	ErrEmptyPool   = errors.New("word pool is empty")
)

// Pool selects one of the two word collections.
type Pool string

const (
	Dictionary Pool = "dictionary"
	Custom     Pool = "custom"
)

// table maps a pool to its SQL table.
func (p Pool) table() (string, error) {
	switch p {
	case Dictionary:
		return "words", nil
	case Custom:
		return "user_words", nil
	}
	return "", fmt.Errorf("unknown pool %q", string(p))
}

// Words is the word storage contract. Words passed in are normalized.
type Words interface {
	// RandomWord picks a uniformly random word from pool (ErrEmptyPool if none).
	RandomWord(ctx context.Context, pool Pool) (string, error)

	// HasWord reports exact membership of word in pool.
	HasWord(ctx context.Context, pool Pool, word string) (bool, error)

	// AddCustom inserts word into the custom pool; false if it was already there.
	AddCustom(ctx context.Context, word string) (bool, error)

	// DeleteCustom removes word from the custom pool; false if it was absent.
	DeleteCustom(ctx context.Context, word string) (bool, error)

	// ListCustom returns the custom pool sorted alphabetically.
	ListCustom(ctx context.Context) ([]string, error)

	// Count returns the number of words in pool.
	Count(ctx context.Context, pool Pool) (int, error)
}

var (
	_ Words = (*SQLite)(nil)
	_ Words = (*MemoryWords)(nil)
)
