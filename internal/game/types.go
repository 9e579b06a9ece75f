// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Verdict: per-letter result of a guess (exact/present/absent).
//   - RowVerdict: the five verdicts of one submitted row.
//   - State: playing/won/lost.
//   - Secret and Source: how a session obtains its word and validates guesses.

package game

import (
	"context"

	"github.com/robalobadob/wordle/apps/go-desktop/internal/words"
)

// MaxRows is the number of guesses a session allows.
const MaxRows = 5

// Verdict represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "exact":   letter is correct and in the correct position.
//   - "present": letter exists in the secret but in a different position.
//   - "absent":  no remaining occurrence of the letter in the secret.
type Verdict string

const (
	Exact   Verdict = "exact"
	Present Verdict = "present"
	Absent  Verdict = "absent"
)

// RowVerdict is the ordered verdict for one row.
type RowVerdict [words.Length]Verdict

// Solved reports whether every letter is Exact.
func (rv RowVerdict) Solved() bool {
	for _, v := range rv {
		if v != Exact {
			return false
		}
	}
	return true
}

// State is a coarse game state.
type State string

const (
	Playing State = "playing"
	Won     State = "won"
	Lost    State = "lost"
)

// Secret is the word to guess plus a notice the UI should surface
// (for example a fallback from the custom list to the dictionary).
type Secret struct {
	Word   string
	Notice string
}

// Source supplies secrets and dictionary checks to a Session.
type Source interface {
	// Secret picks a fresh secret. On storage faults it returns a usable
	// fallback secret together with the error.
	Secret(ctx context.Context) (Secret, error)

	// IsValidGuess reports whether word is in the dictionary.
	IsValidGuess(ctx context.Context, word string) (bool, error)
}

// Row is a submitted guess with its verdict.
type Row struct {
	Guess   string     `json:"guess"`
	Verdict RowVerdict `json:"verdict"`
}

// Snapshot is a read-only copy of a session for presentation layers.
// Answer is only set once the game is finished.
type Snapshot struct {
	ID     string `json:"id"`
	Rows   []Row  `json:"rows"`
	Row    int    `json:"row"`
	State  State  `json:"state"`
	Notice string `json:"notice,omitempty"`
	Answer string `json:"answer,omitempty"`
}
