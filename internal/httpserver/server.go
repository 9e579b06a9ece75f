// internal/httpserver/server.go
//
// HTTP server wiring for the Wordle JSON API.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess, POST /game/reset.
//   - Pure evaluator: POST /evaluate.
//   - Word/settings endpoints: mounted under /words and /settings (routes_words.go).
//
// Notes:
//   - Sessions live in a store.Sessions; guesses are serialised by a server
//     mutex because game.Session is not safe for concurrent use.
//   - Storage faults degrade (fallback secret, permissive dictionary) and are
//     reported back as a notice rather than a 5xx.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-desktop/internal/game"
	"github.com/robalobadob/wordle/apps/go-desktop/internal/store"
	"github.com/robalobadob/wordle/apps/go-desktop/internal/wordbank"
	"github.com/robalobadob/wordle/apps/go-desktop/internal/words"
)

// Server bundles router, session store and word bank.
type Server struct {
	r     *chi.Mux
	store store.Sessions
	bank  *wordbank.Bank
	mu    sync.Mutex // serialises session mutation
}

// New constructs a Server, installs middleware, and registers routes.
func New(bank *wordbank.Bank, st store.Sessions) *Server {
	s := &Server{r: chi.NewRouter(), store: st, bank: bank}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // single-origin CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordle","endpoints":["/health","POST /game/new","POST /game/guess","POST /game/reset","POST /evaluate","/words/custom","/settings/mode"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		st, err := s.bank.Stats(r.Context())
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, "storage_unavailable", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, st)
	})

	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)
	s.r.Post("/game/reset", s.handleReset)
	s.r.Post("/evaluate", s.handleEvaluate)

	s.mountWords(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", r.URL.Path)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ GAME ---------------------------------------

// gameReq is the payload for /game/guess and /game/reset.
type gameReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

// gameRes wraps a snapshot with the id and end-of-game message.
type gameRes struct {
	GameID   string           `json:"gameId"`
	Verdicts *game.RowVerdict `json:"verdicts,omitempty"`
	Message  string           `json:"message,omitempty"`
	game.Snapshot
}

func snapshotRes(g *game.Session, rv *game.RowVerdict) gameRes {
	return gameRes{GameID: g.ID, Verdicts: rv, Message: g.StatusMessage(), Snapshot: g.Snapshot()}
}

// handleNewGame creates a session with a secret picked by the persisted mode.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	g := game.NewSession(r.Context(), s.bank)
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed", err.Error())
		return
	}
	log.Debug().Str("gameId", g.ID).Msg("game created")
	writeJSON(w, http.StatusCreated, snapshotRes(g, nil))
}

// handleGuess applies a guess to a stored session.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req gameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	g, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "unknown game")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rv, err := g.Submit(r.Context(), req.Guess)
	switch {
	case errors.Is(err, words.ErrInvalidWord):
		writeError(w, http.StatusBadRequest, "invalid_word", game.RejectMessage(err))
		return
	case errors.Is(err, game.ErrNotInDictionary):
		writeError(w, http.StatusBadRequest, "not_in_dictionary", game.RejectMessage(err))
		return
	case errors.Is(err, game.ErrGameOver):
		writeError(w, http.StatusConflict, "game_over", game.RejectMessage(err))
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "guess_failed", err.Error())
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, snapshotRes(g, &rv))
}

// handleReset restarts a session with a fresh secret.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req gameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	g, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "unknown game")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	g.Reset(r.Context())
	writeJSON(w, http.StatusOK, snapshotRes(g, nil))
}

// evaluateReq is the payload for /evaluate.
type evaluateReq struct {
	Guess  string `json:"guess"`
	Secret string `json:"secret"`
}

// handleEvaluate scores guess against secret without touching any session.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	guess, err := words.Normalize(req.Guess)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_word", "guess: "+game.RejectMessage(err))
		return
	}
	secret, err := words.Normalize(req.Secret)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_word", "secret: "+game.RejectMessage(err))
		return
	}
	rv := game.Evaluate(guess, secret)
	writeJSON(w, http.StatusOK, map[string]any{"verdicts": rv, "solved": rv.Solved()})
}

// ------------------------------- small util --------------------------------

// writeJSON encodes v with status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

// writeError writes {"error": code, "message": msg}.
func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, map[string]string{"error": code, "message": msg})
}
