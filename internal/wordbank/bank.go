// internal/wordbank/bank.go
//
// Word Store operations used by every front-end.
// Responsibilities:
//   - Pick secrets from the dictionary or the custom list according to the mode.
//   - Validate guesses against the dictionary only.
//   - Add/delete custom words with distinct outcomes.
//   - Load/save the persisted mode.
//
// Storage faults never propagate as failures: each operation logs, returns
// its safe default (fallback secret, empty list, Default mode) and hands the
// error back so the caller can decide whether to show a notice.

package wordbank

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-desktop/internal/game"
	"github.com/robalobadob/wordle/apps/go-desktop/internal/settings"
	"github.com/robalobadob/wordle/apps/go-desktop/internal/store"
	"github.com/robalobadob/wordle/apps/go-desktop/internal/words"
)

// Notices surfaced alongside a secret.
const (
	NoticeCustomEmpty = "Custom word list is empty, using the default dictionary"
	NoticeUnavailable = "Word database unavailable, playing a fallback word"
)

// AddResult is the outcome of AddCustomWord.
type AddResult string

const (
	Added         AddResult = "added"
	AlreadyExists AddResult = "already_exists"
)

// DeleteResult is the outcome of DeleteCustomWord.
type DeleteResult string

const (
	Deleted  DeleteResult = "deleted"
	NotFound DeleteResult = "not_found"
)

// ModeStore persists the word mode.
type ModeStore interface {
	LoadMode() settings.Mode
	SaveMode(settings.Mode) error
}

// Bank combines word storage with the persisted mode.
type Bank struct {
	words store.Words
	modes ModeStore
}

// New returns a Bank over w and m.
func New(w store.Words, m ModeStore) *Bank {
	return &Bank{words: w, modes: m}
}

var _ game.Source = (*Bank)(nil)

// PickSecret selects a random secret for mode.
//
//   - Custom with an empty list falls back to the dictionary with NoticeCustomEmpty.
//   - Any storage fault yields game.FallbackSecret with NoticeUnavailable
//     and the error (wrapping store.ErrUnavailable).
func (b *Bank) PickSecret(ctx context.Context, mode settings.Mode) (game.Secret, error) {
	var sec game.Secret
	pool := store.Dictionary
	if mode == settings.Custom {
		pool = store.Custom
	}

	w, err := b.words.RandomWord(ctx, pool)
	if pool == store.Custom && errors.Is(err, store.ErrEmptyPool) {
		log.Info().Msg("custom word list empty, falling back to dictionary")
		sec.Notice = NoticeCustomEmpty
		w, err = b.words.RandomWord(ctx, store.Dictionary)
	}
	if err != nil {
		log.Error().Err(err).Str("component", "wordbank").Str("pool", string(pool)).Msg("pick secret")
		return game.Secret{Word: game.FallbackSecret, Notice: NoticeUnavailable}, err
	}
	sec.Word = w
	return sec, nil
}

// Secret picks a secret using the persisted mode.
func (b *Bank) Secret(ctx context.Context) (game.Secret, error) {
	return b.PickSecret(ctx, b.LoadMode())
}

// IsValidGuess reports dictionary membership of word. Custom words are
// never consulted. When the dictionary cannot be read every well-formed
// word is accepted and the fault is returned with the result.
func (b *Bank) IsValidGuess(ctx context.Context, word string) (bool, error) {
	w, err := words.Normalize(word)
	if err != nil {
		return false, nil
	}
	ok, err := b.words.HasWord(ctx, store.Dictionary, w)
	if err != nil {
		log.Warn().Err(err).Str("component", "wordbank").Msg("dictionary check skipped")
		return true, err
	}
	return ok, nil
}

// AddCustomWord validates and inserts word into the custom list.
// Invalid input returns an error wrapping words.ErrInvalidWord.
func (b *Bank) AddCustomWord(ctx context.Context, word string) (AddResult, error) {
	w, err := words.Normalize(word)
	if err != nil {
		return "", err
	}
	added, err := b.words.AddCustom(ctx, w)
	if err != nil {
		log.Error().Err(err).Str("component", "wordbank").Str("word", w).Msg("add custom word")
		return "", err
	}
	if !added {
		return AlreadyExists, nil
	}
	log.Debug().Str("word", w).Msg("custom word added")
	return Added, nil
}

// DeleteCustomWord removes word from the custom list.
func (b *Bank) DeleteCustomWord(ctx context.Context, word string) (DeleteResult, error) {
	w, err := words.Normalize(word)
	if err != nil {
		// Nothing invalid can be stored, so there is nothing to delete.
		return NotFound, nil
	}
	deleted, err := b.words.DeleteCustom(ctx, w)
	if err != nil {
		log.Error().Err(err).Str("component", "wordbank").Str("word", w).Msg("delete custom word")
		return "", err
	}
	if !deleted {
		return NotFound, nil
	}
	log.Debug().Str("word", w).Msg("custom word deleted")
	return Deleted, nil
}

// CustomWords lists the custom words; empty on storage faults.
func (b *Bank) CustomWords(ctx context.Context) ([]string, error) {
	list, err := b.words.ListCustom(ctx)
	if err != nil {
		log.Warn().Err(err).Str("component", "wordbank").Msg("list custom words")
		return []string{}, err
	}
	return list, nil
}

// LoadMode reads the persisted mode (Default on any fault).
func (b *Bank) LoadMode() settings.Mode { return b.modes.LoadMode() }

// SaveMode persists mode.
func (b *Bank) SaveMode(mode settings.Mode) error {
	if err := b.modes.SaveMode(mode); err != nil {
		log.Error().Err(err).Str("component", "wordbank").Str("mode", string(mode)).Msg("save mode")
		return err
	}
	return nil
}

// Stats holds pool sizes.
type Stats struct {
	Dictionary int `json:"dictionary"`
	Custom     int `json:"custom"`
}

// Stats counts both pools.
func (b *Bank) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	var err error
	if st.Dictionary, err = b.words.Count(ctx, store.Dictionary); err != nil {
		return Stats{}, err
	}
	if st.Custom, err = b.words.Count(ctx, store.Custom); err != nil {
		return Stats{}, err
	}
	return st, nil
}
