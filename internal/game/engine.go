// internal/game/engine.go
//
// Core game engine for a single Wordle session.
// Responsibilities:
//   - Create sessions with a secret drawn from a Source.
//   - Validate and apply guesses (length, alphabetic, dictionary).
//   - Score guesses using the classic two‑pass Wordle algorithm.
//   - Track state transitions: playing → won/lost, any → playing on reset.
//
// Notes:
//   - Storage faults while picking a secret never fail a session; the Source
//     hands back a fallback word and the fault becomes the session notice.
//   - randomID() is a compact hex identifier for correlating front-end state.
package game

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-desktop/internal/words"
)

// FallbackSecret is played when no secret could be read from storage.
const FallbackSecret = "hello"

var (
	// ErrNotInDictionary rejects well-formed guesses that are not real words.
	ErrNotInDictionary = errors.New("not in word list")
	// ErrGameOver rejects guesses after the session is won or lost.
	ErrGameOver        = errors.New("game finished")
)

// Session holds the state of one game. It is not safe for concurrent use.
type Session struct {
	ID string

	src    Source
	secret string
	notice string
	rows   []Row
	state  State
}

// NewSession constructs a session with a freshly picked secret.
func NewSession(ctx context.Context, src Source) *Session {
	s := &Session{ID: randomID(), src: src}
	s.Reset(ctx)
	return s
}

// Reset discards all rows and picks a new secret.
func (s *Session) Reset(ctx context.Context) {
	sec, err := s.src.Secret(ctx)
	if err != nil {
		log.Warn().Err(err).Str("session", s.ID).Msg("secret picked from fallback")
	}
	if !words.Valid(sec.Word) {
		sec.Word = FallbackSecret
	}
	s.secret = sec.Word
	s.notice = sec.Notice
	s.rows = s.rows[:0]
	s.state = Playing
}

// Submit validates and scores a guess, advancing the session.
//
// Validation rules:
//   - Session must still be playing (ErrGameOver).
//   - Guess must be 5 ASCII letters (words.ErrInvalidWord).
//   - Guess must be in the dictionary (ErrNotInDictionary).
//
// Rejected guesses leave the session untouched.
func (s *Session) Submit(ctx context.Context, guess string) (RowVerdict, error) {
	if s.state != Playing {
		return RowVerdict{}, ErrGameOver
	}
	w, err := words.Normalize(guess)
	if err != nil {
		return RowVerdict{}, err
	}
	ok, err := s.src.IsValidGuess(ctx, w)
	if err != nil {
		log.Warn().Err(err).Str("session", s.ID).Msg("dictionary check degraded")
	}
	if !ok {
		return RowVerdict{}, ErrNotInDictionary
	}

	rv := Evaluate(w, s.secret)
	s.rows = append(s.rows, Row{Guess: w, Verdict: rv})

	switch {
	case w == s.secret:
		s.state = Won
	case len(s.rows) >= MaxRows:
		s.state = Lost
	}
	return rv, nil
}

// State reports the current state.
func (s *Session) State() State { return s.state }

// Row reports the index of the row being edited (0..MaxRows-1). Once the
// session is finished it is the number of rows played.
func (s *Session) Row() int { return len(s.rows) }

// Notice is the message attached to the current secret, if any.
func (s *Session) Notice() string { return s.notice }

// Answer reveals the secret once the session is finished.
func (s *Session) Answer() (string, bool) {
	if s.state == Playing {
		return "", false
	}
	return s.secret, true
}

// Grid returns the 5x5 letter grid; unplayed cells are zero.
func (s *Session) Grid() [MaxRows][words.Length]byte {
	var g [MaxRows][words.Length]byte
	for r, row := range s.rows {
		copy(g[r][:], row.Guess)
	}
	return g
}

// Snapshot returns a copy of the session suitable for rendering.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID:     s.ID,
		Rows:   make([]Row, len(s.rows)),
		Row:    len(s.rows),
		State:  s.state,
		Notice: s.notice,
	}
	copy(snap.Rows, s.rows)
	if ans, ok := s.Answer(); ok {
		snap.Answer = ans
	}
	return snap
}

// Evaluate implements the standard Wordle two‑pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Exact.
//   - Count remaining (non‑exact) secret letters.
//
// Pass 2:
//   - Left to right, for each non‑exact guess letter: if there is remaining
//     count for that letter, mark Present and decrement; otherwise Absent.
//
// Both inputs must be normalized words.
func Evaluate(guess, secret string) RowVerdict {
	var res RowVerdict
	var counts [26]int

	for i := 0; i < words.Length; i++ {
		if guess[i] == secret[i] {
			res[i] = Exact
		} else {
			counts[secret[i]-'a']++
		}
	}

	for i := 0; i < words.Length; i++ {
		if res[i] == Exact {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			res[i] = Present
			counts[j]--
		} else {
			res[i] = Absent
		}
	}
	return res
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
