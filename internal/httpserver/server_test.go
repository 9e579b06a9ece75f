package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-desktop/internal/game"
	"github.com/robalobadob/wordle/apps/go-desktop/internal/settings"
	"github.com/robalobadob/wordle/apps/go-desktop/internal/store"
	"github.com/robalobadob/wordle/apps/go-desktop/internal/wordbank"
)

func newTestServer(t *testing.T, dict ...string) *Server {
	t.Helper()
	bank := wordbank.New(store.NewMemoryWords(dict), settings.Open(filepath.Join(t.TempDir(), "settings.ini")))
	return New(bank, store.NewMemorySessions())
}

func do(t *testing.T, s *Server, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	out := map[string]any{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec, out
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, "crane")
	rec, out := do(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, out["ok"])
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestGameFlow(t *testing.T) {
	s := newTestServer(t, "crane", "slate")
	s.bank = wordbank.New(store.NewMemoryWords([]string{"crane", "slate"}), modeOnly(settings.Default))

	rec, out := do(t, s, http.MethodPost, "/game/new", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	id, _ := out["gameId"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, string(game.Playing), out["state"])

	rec, out = do(t, s, http.MethodPost, "/game/guess", map[string]string{"gameId": id, "guess": "abc"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_word", out["error"])

	rec, out = do(t, s, http.MethodPost, "/game/guess", map[string]string{"gameId": id, "guess": "zzzzz"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "not_in_dictionary", out["error"])

	rec, _ = do(t, s, http.MethodPost, "/game/guess", map[string]string{"gameId": "nope", "guess": "crane"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Play both dictionary words; one of them is the secret.
	var state any
	for _, w := range []string{"crane", "slate"} {
		rec, out = do(t, s, http.MethodPost, "/game/guess", map[string]string{"gameId": id, "guess": w})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		state = out["state"]
		if state == string(game.Won) {
			assert.Equal(t, "WINNER!", out["message"])
			assert.Equal(t, w, out["answer"])
			break
		}
		assert.Nil(t, out["answer"])
	}
	require.Equal(t, string(game.Won), state)

	rec, out = do(t, s, http.MethodPost, "/game/guess", map[string]string{"gameId": id, "guess": "crane"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "game_over", out["error"])

	rec, out = do(t, s, http.MethodPost, "/game/reset", map[string]string{"gameId": id})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, string(game.Playing), out["state"])
	assert.EqualValues(t, 0, out["row"])
}

func TestConcurrentResetAndGuess(t *testing.T) {
	s := newTestServer(t, "crane", "slate")
	s.bank = wordbank.New(store.NewMemoryWords([]string{"crane", "slate"}), modeOnly(settings.Default))

	rec, out := do(t, s, http.MethodPost, "/game/new", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	id, _ := out["gameId"].(string)
	require.NotEmpty(t, id)

	post := func(path string, body any) int {
		b, err := json.Marshal(body)
		if !assert.NoError(t, err) {
			return 0
		}
		rec := httptest.NewRecorder()
		s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b)))
		return rec.Code
	}

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			code := post("/game/reset", map[string]string{"gameId": id})
			assert.Equal(t, http.StatusOK, code)
		}()
		go func() {
			defer wg.Done()
			code := post("/game/guess", map[string]string{"gameId": id, "guess": "slate"})
			assert.Contains(t, []int{http.StatusOK, http.StatusConflict}, code)
		}()
	}
	wg.Wait()

	rec, out = do(t, s, http.MethodPost, "/game/reset", map[string]string{"gameId": id})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, string(game.Playing), out["state"])
}

func TestEvaluate(t *testing.T) {
	s := newTestServer(t, "crane")
	rec, out := do(t, s, http.MethodPost, "/evaluate", map[string]string{"guess": "abcde", "secret": "edcba"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"present", "present", "exact", "present", "present"}, out["verdicts"])
	assert.Equal(t, false, out["solved"])

	rec, out = do(t, s, http.MethodPost, "/evaluate", map[string]string{"guess": "abcde", "secret": "ab"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_word", out["error"])
}

func TestCustomWords(t *testing.T) {
	s := newTestServer(t, "crane")

	rec, out := do(t, s, http.MethodPost, "/words/custom", map[string]string{"word": "Apple"})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "added", out["result"])
	assert.Equal(t, "apple", out["word"])

	rec, out = do(t, s, http.MethodPost, "/words/custom", map[string]string{"word": "apple"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "already_exists", out["result"])

	rec, _ = do(t, s, http.MethodPost, "/words/custom", map[string]string{"word": "app1e"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, out = do(t, s, http.MethodGet, "/words/custom", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"apple"}, out["words"])

	rec, out = do(t, s, http.MethodDelete, "/words/custom/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", out["result"])

	rec, out = do(t, s, http.MethodDelete, "/words/custom/apple", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "deleted", out["result"])
}

func TestModeAndFallbackNotice(t *testing.T) {
	s := newTestServer(t, "crane")

	_, out := do(t, s, http.MethodGet, "/settings/mode", nil)
	assert.Equal(t, "Default", out["mode"])

	rec, _ := do(t, s, http.MethodPut, "/settings/mode", map[string]string{"mode": "hard"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, out = do(t, s, http.MethodPut, "/settings/mode", map[string]string{"mode": "custom"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Custom", out["mode"])

	_, out = do(t, s, http.MethodPost, "/game/new", nil)
	assert.Equal(t, wordbank.NoticeCustomEmpty, out["notice"])

	_, out = do(t, s, http.MethodGet, "/debug/words", nil)
	assert.EqualValues(t, 1, out["dictionary"])
	assert.EqualValues(t, 0, out["custom"])
}

func TestNotFoundIsJSON(t *testing.T) {
	rec, out := do(t, newTestServer(t, "crane"), http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", out["error"])
}

// modeOnly is a fixed ModeStore.
type modeOnly settings.Mode

func (m modeOnly) LoadMode() settings.Mode      { return settings.Mode(m) }
func (m modeOnly) SaveMode(settings.Mode) error { return nil }
