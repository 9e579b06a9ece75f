package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	got, err := Normalize("  CrAnE \n")
	require.NoError(t, err)
	assert.Equal(t, "crane", got)

	for _, in := range []string{"", "four", "sixsix", "cr4ne", "cr ne", "héllo", "ñandu", "\u212Aayak", "se\u017Fsy"} {
		_, err := Normalize(in)
		assert.ErrorIs(t, err, ErrInvalidWord, "input %q", in)
	}
}

func TestNormalizeReasons(t *testing.T) {
	_, err := Normalize("abc")
	assert.ErrorIs(t, err, ErrLength)
	assert.ErrorContains(t, err, "must be 5 letters")
	_, err = Normalize("ab1de")
	assert.ErrorIs(t, err, ErrNotLetters)
	assert.ErrorContains(t, err, "letters only")

	for _, in := range []string{"", "   ", "\t\n"} {
		_, err = Normalize(in)
		assert.ErrorIs(t, err, ErrLength, "input %q", in)
	}
}

func TestNormalizeRejectsUnicodeFoldingToASCII(t *testing.T) {
	// The Kelvin sign lowercases to k and long s case-folds to s.
	for _, in := range []string{"\u212Aayak", "KAYA\u212A", "\u017Fassy"} {
		got, err := Normalize(in)
		assert.ErrorIs(t, err, ErrNotLetters, "input %q", in)
		assert.Empty(t, got)
	}
}

func TestParseList(t *testing.T) {
	in := "# comment\ncrane\n\nCRANE\nslate\ntoolong\nab3de\n  pious  \n"
	got, err := ParseList(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate", "pious"}, got)
}

func TestDefaultDictionary(t *testing.T) {
	list, err := Default()
	require.NoError(t, err)
	require.NotEmpty(t, list)
	for _, w := range list {
		assert.True(t, Valid(w), w)
	}
	assert.Contains(t, list, "hello")
}

func TestSeed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.txt")
	require.NoError(t, os.WriteFile(path, []byte("apple\nmango\n"), 0o644))

	list, err := Seed(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "mango"}, list)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("# nothing\n"), 0o644))
	_, err = Seed(empty)
	assert.Error(t, err)

	_, err = Seed(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	def, err := Seed("")
	require.NoError(t, err)
	assert.NotEmpty(t, def)
}
