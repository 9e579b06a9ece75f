package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-desktop/internal/game"
)

type fixedSource struct{}

func (fixedSource) Secret(context.Context) (game.Secret, error) {
	return game.Secret{Word: "crane"}, nil
}

func (fixedSource) IsValidGuess(context.Context, string) (bool, error) { return true, nil }

func TestMemorySessions(t *testing.T) {
	ctx := context.Background()
	st := NewMemorySessions()
	s := game.NewSession(ctx, fixedSource{})

	_, err := st.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, st.Save(ctx, s))
	got, err := st.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)
}

func TestMemoryWords(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryWords([]string{"crane", "slate"})

	ok, err := m.HasWord(ctx, Dictionary, "slate")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = m.RandomWord(ctx, Custom)
	assert.ErrorIs(t, err, ErrEmptyPool)

	added, _ := m.AddCustom(ctx, "apple")
	assert.True(t, added)
	added, _ = m.AddCustom(ctx, "apple")
	assert.False(t, added)

	n, _ := m.Count(ctx, Custom)
	assert.Equal(t, 1, n)

	w, err := m.RandomWord(ctx, Custom)
	require.NoError(t, err)
	assert.Equal(t, "apple", w)

	deleted, _ := m.DeleteCustom(ctx, "pears")
	assert.False(t, deleted)
}
