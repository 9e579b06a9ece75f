package game

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-desktop/internal/words"
)

func TestRejectMessage(t *testing.T) {
	assert.Equal(t, "Please enter 5 letters", RejectMessage(words.ErrLength))
	assert.Equal(t, "Please enter letters only", RejectMessage(words.ErrNotLetters))
	assert.Equal(t, "Not in word list", RejectMessage(ErrNotInDictionary))
	assert.Equal(t, "Game over, start again", RejectMessage(ErrGameOver))
	assert.Equal(t, "boom", RejectMessage(errors.New("boom")))
	assert.Empty(t, RejectMessage(nil))
}

func TestStatusMessage(t *testing.T) {
	ctx := context.Background()
	s := NewSession(ctx, newFake("crane", "slate"))
	assert.Empty(t, s.StatusMessage())

	for i := 0; i < MaxRows; i++ {
		_, err := s.Submit(ctx, "slate")
		require.NoError(t, err)
	}
	assert.Equal(t, "Game over! Word was: crane", s.StatusMessage())

	s.Reset(ctx)
	_, err := s.Submit(ctx, "crane")
	require.NoError(t, err)
	assert.Equal(t, "WINNER!", s.StatusMessage())
}
