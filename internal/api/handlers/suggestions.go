package handlers

import (
	"net/http"
	"strings"
	"terminal-itinerary-service/internal/api/dto"
	"terminal-itinerary-service/internal/domain"
	"terminal-itinerary-service/internal/services"
)

// SuggestionHandler answers free-text queries for one itinerary session.
// Provider failures are absorbed by the suggester and never surface as 5xx.
type SuggestionHandler struct {
	Sessions     *services.ItinerarySessions
	Suggester    *services.Suggester
	Translations domain.Translations
}

func (h *SuggestionHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req dto.SuggestionRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	lang := strings.TrimSpace(req.Language)
	if lang == "" {
		lang = language(r)
	}

	selected, err := h.Sessions.Selection(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "suggest", err)
		return
	}

	s := h.Suggester.Suggest(r.Context(), req.Query, lang, selected)

	res := dto.SuggestionResponse{
		Text:              s.Text,
		Checkpoints:       make([]dto.CheckpointResponse, 0, len(s.Checkpoints)),
		Source:            string(s.Source),
		NeedsConfirmation: s.NeedsConfirmation,
	}
	for _, cp := range s.Checkpoints {
		res.Checkpoints = append(res.Checkpoints, toCheckpointResponse(cp, h.Translations, lang))
	}

	writeJSON(w, r, http.StatusOK, res)
}
