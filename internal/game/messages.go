package game

import (
	"errors"

	"github.com/robalobadob/wordle/apps/go-desktop/internal/words"
)

// RejectMessage turns a Submit error into the line shown under the grid.
func RejectMessage(err error) string {
	switch {
	case errors.Is(err, words.ErrLength):
		return "Please enter 5 letters"
	case errors.Is(err, words.ErrInvalidWord):
		return "Please enter letters only"
	case errors.Is(err, ErrNotInDictionary):
		return "Not in word list"
	case errors.Is(err, ErrGameOver):
		return "Game over, start again"
	case err != nil:
		return err.Error()
	}
	return ""
}

// StatusMessage is the end-of-game line, empty while playing.
func (s *Session) StatusMessage() string {
	switch s.state {
	case Won:
		return "WINNER!"
	case Lost:
		return "Game over! Word was: " + s.secret
	}
	return ""
}
