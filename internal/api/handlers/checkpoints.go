package handlers

import (
	"net/http"
	"terminal-itinerary-service/internal/api/dto"
	"terminal-itinerary-service/internal/domain"
)

// CheckpointHandler exposes the read-only checkpoint catalog.
type CheckpointHandler struct {
	Catalog      *domain.Catalog
	Translations domain.Translations
}

func (h *CheckpointHandler) List(w http.ResponseWriter, r *http.Request) {
	lang := language(r)
	all := h.Translations.LocalizeAll(h.Catalog.All(), lang)

	res := dto.ListCheckpointsResponse{
		Language:    lang,
		Checkpoints: make([]dto.CheckpointResponse, 0, len(all)),
	}
	for _, cp := range all {
		res.Checkpoints = append(res.Checkpoints, toCheckpointResponse(cp, h.Translations, lang))
	}

	writeJSON(w, r, http.StatusOK, res)
}
