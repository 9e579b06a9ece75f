package ui

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestClipEntry(t *testing.T) {
	got, cut := clipEntry("crane")
	assert.False(t, cut)
	assert.Equal(t, "crane", got)

	got, cut = clipEntry("cranes")
	assert.True(t, cut)
	assert.Equal(t, "crane", got)

	// Multibyte input is cut on rune boundaries.
	got, cut = clipEntry("ééééé!")
	assert.True(t, cut)
	assert.Equal(t, "ééééé", got)
	assert.True(t, utf8.ValidString(got))
}

func TestPreviewLetters(t *testing.T) {
	assert.Equal(t, [5]string{"C", "R", "", "", ""}, previewLetters("cr"))
	assert.Equal(t, [5]string{"É", "L", "A", "N", "S"}, previewLetters("élans"))
	for _, l := range previewLetters("ñandú") {
		assert.True(t, utf8.ValidString(l))
	}
}
