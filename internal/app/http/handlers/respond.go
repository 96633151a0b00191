package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"iq-home/quote_backend/internal/app/http/middleware"
	"iq-home/quote_backend/internal/domain/placeholder"
	"iq-home/quote_backend/internal/domain/quote"
	"iq-home/quote_backend/internal/domain/quote/editor"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors to statuses; anything unknown is logged and
// reported as an internal error.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, placeholder.ErrInvalidVocabulary), errors.Is(err, placeholder.ErrInvalidPrice):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, quote.ErrNotFound), errors.Is(err, editor.ErrSessionNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, editor.ErrSessionExpired):
		writeJSON(w, http.StatusGone, errorResponse{Error: "session expired"})
	default:
		log.Error().Err(err).
			Str("path", r.URL.Path).
			Str("request_id", middleware.RequestIDFromCtx(r.Context())).
			Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func int64Param(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
