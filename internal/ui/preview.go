package ui

import (
	"strings"

	"github.com/robalobadob/wordle/apps/go-desktop/internal/words"
)

// clipEntry caps s at words.Length runes. It reports whether s was cut.
func clipEntry(s string) (string, bool) {
	r := []rune(s)
	if len(r) <= words.Length {
		return s, false
	}
	return string(r[:words.Length]), true
}

// previewLetters splits s into one uppercase letter per tile.
func previewLetters(s string) [words.Length]string {
	var out [words.Length]string
	for i, r := range []rune(s) {
		if i == words.Length {
			break
		}
		out[i] = strings.ToUpper(string(r))
	}
	return out
}
