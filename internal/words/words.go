// internal/words/words.go
//
// Word validation and word-list loading.
//
// Responsibilities:
//   - Normalize user input into a Word (exactly 5 lowercase ASCII letters).
//   - Parse seed lists (one word per line) from files, readers or the embedded default.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z) after trimming and lowercasing.
//   • Lists drop blank lines, "#" comments, invalid words and duplicates.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/go-desktop/assets"
)

// Length is the number of letters in every word.
const Length = 5

var (
	// ErrInvalidWord is returned for input that is not 5 ASCII letters.
	ErrInvalidWord = errors.New("invalid word")

	// ErrNotLetters and ErrLength say which rule failed; both wrap ErrInvalidWord.
	ErrNotLetters = fmt.Errorf("%w: letters only", ErrInvalidWord)
	ErrLength     = fmt.Errorf("%w: must be %d letters", ErrInvalidWord, Length)
)

// Normalize trims and lowercases s, then checks it is a valid word.
// Only A-Z are folded; any other byte outside a-z is rejected.
// The returned error is ErrNotLetters or ErrLength.
func Normalize(s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", ErrLength
	}
	b := make([]byte, len(t))
	for i := 0; i < len(t); i++ {
		c := t[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		b[i] = c
	}
	w := string(b)
	if !isAlpha(w) {
		return "", ErrNotLetters
	}
	if len(w) != Length {
		return "", ErrLength
	}
	return w, nil
}

// Valid reports whether s is already a normalized word.
func Valid(s string) bool {
	return len(s) == Length && isAlpha(s)
}

// isAlpha reports whether s is non-empty and all lowercase ASCII letters.
// Non-ASCII letters are rejected byte by byte.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// ParseList reads one word per line, keeping the first occurrence of
// every valid word in input order.
func ParseList(r io.Reader) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w, err := Normalize(line)
		if err != nil {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out, sc.Err()
}

// ReadFile loads a word list from path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseList(f)
}

// Default returns the embedded default dictionary.
func Default() ([]string, error) {
	f, err := assets.Dictionary()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseList(f)
}

// Seed returns the dictionary to load into a fresh database: the list at
// path when set, otherwise the embedded default.
func Seed(path string) ([]string, error) {
	if path == "" {
		return Default()
	}
	list, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, errors.New("words: seed list is empty")
	}
	return list, nil
}
