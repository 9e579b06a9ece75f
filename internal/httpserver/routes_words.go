// internal/httpserver/routes_words.go
//
// Custom word list and mode settings:
//   - GET    /words/custom         → sorted custom list
//   - POST   /words/custom         → add ({"word"}); 201 added, 200 already_exists
//   - DELETE /words/custom/{word}  → 200 deleted, 404 not_found
//   - GET    /settings/mode        → {"mode"}
//   - PUT    /settings/mode        → persist {"mode"}

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle/apps/go-desktop/internal/game"
	"github.com/robalobadob/wordle/apps/go-desktop/internal/settings"
	"github.com/robalobadob/wordle/apps/go-desktop/internal/wordbank"
	"github.com/robalobadob/wordle/apps/go-desktop/internal/words"
)

// mountWords registers /words and /settings routes.
func (s *Server) mountWords(r chi.Router) {
	r.Route("/words/custom", func(r chi.Router) {
		r.Get("/", s.handleListCustom)
		r.Post("/", s.handleAddCustom)
		r.Delete("/{word}", s.handleDeleteCustom)
	})
	r.Route("/settings/mode", func(r chi.Router) {
		r.Get("/", s.handleGetMode)
		r.Put("/", s.handlePutMode)
	})
}

type wordReq struct {
	Word string `json:"word"`
}

type wordRes struct {
	Word   string `json:"word"`
	Result string `json:"result"`
}

func (s *Server) handleListCustom(w http.ResponseWriter, r *http.Request) {
	list, err := s.bank.CustomWords(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "storage_unavailable", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"words": list})
}

func (s *Server) handleAddCustom(w http.ResponseWriter, r *http.Request) {
	var req wordReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	res, err := s.bank.AddCustomWord(r.Context(), req.Word)
	if errors.Is(err, words.ErrInvalidWord) {
		writeError(w, http.StatusBadRequest, "invalid_word", game.RejectMessage(err))
		return
	}
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "storage_unavailable", err.Error())
		return
	}
	status := http.StatusCreated
	if res == wordbank.AlreadyExists {
		status = http.StatusOK
	}
	word, _ := words.Normalize(req.Word)
	writeJSON(w, status, wordRes{Word: word, Result: string(res)})
}

func (s *Server) handleDeleteCustom(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")
	res, err := s.bank.DeleteCustomWord(r.Context(), word)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "storage_unavailable", err.Error())
		return
	}
	status := http.StatusOK
	if res == wordbank.NotFound {
		status = http.StatusNotFound
	}
	writeJSON(w, status, wordRes{Word: word, Result: string(res)})
}

type modeBody struct {
	Mode string `json:"mode"`
}

func (s *Server) handleGetMode(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, modeBody{Mode: string(s.bank.LoadMode())})
}

func (s *Server) handlePutMode(w http.ResponseWriter, r *http.Request) {
	var req modeBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	m, err := settings.ParseMode(req.Mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_mode", err.Error())
		return
	}
	if err := s.bank.SaveMode(m); err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, modeBody{Mode: string(m)})
}
