package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"terminal-itinerary-service/internal/api/dto"
	"terminal-itinerary-service/internal/domain"
	"terminal-itinerary-service/internal/platform/obs"
	"terminal-itinerary-service/internal/ports"

	"github.com/rs/zerolog/log"
)

const defaultLanguage = "en"

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().
			Str("req_id", obs.RequestID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Err(err).
			Msg("encode failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeServiceError maps service errors onto status codes.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, ports.ErrItineraryNotFound) {
		writeError(w, r, http.StatusNotFound, "itinerary not found")
		return
	}

	log.Error().
		Str("req_id", obs.RequestID(r.Context())).
		Str("op", op).
		Err(err).
		Msg("request failed")
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}

// decodeJSON reads exactly one JSON object with no unknown fields.
// An empty body leaves v untouched when allowEmpty is set.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any, allowEmpty bool) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return true
		}
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

func language(r *http.Request) string {
	if lang := strings.TrimSpace(r.URL.Query().Get("lang")); lang != "" {
		return lang
	}
	return defaultLanguage
}

func toCheckpointResponse(cp domain.Checkpoint, t domain.Translations, lang string) dto.CheckpointResponse {
	return dto.CheckpointResponse{
		ID:               cp.ID,
		Name:             cp.Name,
		Type:             string(cp.Category),
		TypeLabel:        t.CategoryLabel(cp.Category, lang),
		Location:         cp.Location,
		Description:      cp.Description,
		Terminal:         cp.Terminal,
		X:                cp.X,
		Y:                cp.Y,
		Mandatory:        cp.Mandatory,
		EstimatedMinutes: cp.DwellMinutes(),
	}
}
