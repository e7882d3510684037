package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/jaminalder/tictactoe-minimax/internal/app"
	"github.com/jaminalder/tictactoe-minimax/internal/domain"
	"github.com/jaminalder/tictactoe-minimax/internal/search"
)

const maxBody = 1 << 12

type handlers struct {
	svc *app.Service
}

type boardRequest struct {
	Board []string `json:"board"`
}

type moveResponse struct {
	ID      string         `json:"id"`
	Board   []string       `json:"board"`
	Move    *int           `json:"move"`
	Outcome domain.Outcome `json:"outcome"`
	Cached  bool           `json:"cached"`
	Created time.Time      `json:"created"`
}

type analyzeResponse struct {
	moveResponse
	Score  *int               `json:"score"`
	Scores []search.MoveScore `json:"scores"`
	Stats  search.Stats       `json:"stats"`
}

type evaluateResponse struct {
	Outcome domain.Outcome `json:"outcome"`
	Winner  string         `json:"winner"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, domain.ErrBoardSize), errors.Is(err, domain.ErrInvalidMark):
		status = http.StatusBadRequest
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		status = http.StatusBadRequest
		err = errors.New("malformed request body")
	case errors.Is(err, app.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
	}
	if status == http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func decodeBoard(r *http.Request) (domain.Board, error) {
	var req boardRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(&req); err != nil {
		return domain.Board{}, err
	}
	return domain.ParseBoard(req.Board)
}

func cells(b domain.Board) []string {
	out := make([]string, len(b))
	for i, c := range b {
		out[i] = c.String()
	}
	return out
}

func toMoveResponse(sg *app.Suggestion) moveResponse {
	resp := moveResponse{
		ID:      sg.ID,
		Board:   cells(sg.Board),
		Outcome: sg.Outcome,
		Cached:  sg.Cached,
		Created: sg.Created,
	}
	if move, ok := sg.Move(); ok {
		resp.Move = &move
	}
	return resp
}

func toAnalyzeResponse(sg *app.Suggestion) analyzeResponse {
	resp := analyzeResponse{
		moveResponse: toMoveResponse(sg),
		Scores:       sg.Analysis.Scores,
		Stats:        sg.Analysis.Stats,
	}
	if resp.Scores == nil {
		resp.Scores = []search.MoveScore{}
	}
	if score, ok := sg.Analysis.Score(); ok {
		resp.Score = &score
	}
	return resp
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) suggest(w http.ResponseWriter, r *http.Request) (*app.Suggestion, bool) {
	b, err := decodeBoard(r)
	if err != nil {
		writeError(w, r, err)
		return nil, false
	}
	sg, err := h.svc.Suggest(r.Context(), b)
	if err != nil {
		writeError(w, r, err)
		return nil, false
	}
	return sg, true
}

func (h *handlers) move(w http.ResponseWriter, r *http.Request) {
	if sg, ok := h.suggest(w, r); ok {
		writeJSON(w, http.StatusOK, toMoveResponse(sg))
	}
}

func (h *handlers) analyze(w http.ResponseWriter, r *http.Request) {
	if sg, ok := h.suggest(w, r); ok {
		writeJSON(w, http.StatusOK, toAnalyzeResponse(sg))
	}
}

func (h *handlers) evaluate(w http.ResponseWriter, r *http.Request) {
	b, err := decodeBoard(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	o, err := h.svc.Evaluate(b)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, evaluateResponse{Outcome: o, Winner: o.Winner().String()})
}

func (h *handlers) suggestion(w http.ResponseWriter, r *http.Request) {
	sg, err := h.svc.Lookup(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnalyzeResponse(sg))
}
