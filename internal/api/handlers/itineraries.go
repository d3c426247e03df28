package handlers

import (
	"net/http"
	"strings"
	"terminal-itinerary-service/internal/api/dto"
	"terminal-itinerary-service/internal/domain"
	"terminal-itinerary-service/internal/services"
)

// ItineraryHandler exposes the itinerary state controller per session.
// Every mutating endpoint answers with the full updated itinerary.
type ItineraryHandler struct {
	Sessions     *services.ItinerarySessions
	Translations domain.Translations
}

func (h *ItineraryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateItineraryRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}

	id, view, err := h.Sessions.Create(r.Context(), req.StartTime)
	if err != nil {
		writeServiceError(w, r, "create itinerary", err)
		return
	}

	w.Header().Set("Location", "/itineraries/"+id)
	writeJSON(w, r, http.StatusCreated, h.toResponse(id, view, language(r)))
}

func (h *ItineraryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	view, err := h.Sessions.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "get itinerary", err)
		return
	}

	writeJSON(w, r, http.StatusOK, h.toResponse(id, view, language(r)))
}

func (h *ItineraryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, "delete itinerary", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddCheckpoints adds one or more checkpoints. Several ids are optimized in one pass.
func (h *ItineraryHandler) AddCheckpoints(w http.ResponseWriter, r *http.Request) {
	var req dto.AddCheckpointsRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	ids := make([]string, 0, len(req.IDs))
	for _, id := range req.IDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		writeError(w, r, http.StatusBadRequest, "ids must contain at least one checkpoint id")
		return
	}

	h.update(w, r, "add checkpoints", func(it *services.Itinerary) {
		if len(ids) == 1 {
			it.Add(ids[0])
			return
		}
		it.AddMultiple(ids)
	})
}

func (h *ItineraryHandler) RemoveCheckpoint(w http.ResponseWriter, r *http.Request) {
	checkpointID := r.PathValue("checkpointID")
	h.update(w, r, "remove checkpoint", func(it *services.Itinerary) { it.Remove(checkpointID) })
}

func (h *ItineraryHandler) ToggleCheckpoint(w http.ResponseWriter, r *http.Request) {
	checkpointID := r.PathValue("checkpointID")
	h.update(w, r, "toggle checkpoint", func(it *services.Itinerary) { it.Toggle(checkpointID) })
}

func (h *ItineraryHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, "reset itinerary", func(it *services.Itinerary) { it.Reset() })
}

func (h *ItineraryHandler) SetStep(w http.ResponseWriter, r *http.Request) {
	var req dto.SetStepRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	h.update(w, r, "set step", func(it *services.Itinerary) { it.SetStep(req.Step) })
}

func (h *ItineraryHandler) SetStartTime(w http.ResponseWriter, r *http.Request) {
	var req dto.StartTimeRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	if (req.StartTime == nil) == (req.ShiftMinutes == nil) {
		writeError(w, r, http.StatusBadRequest, "exactly one of start_time or shift_minutes is required")
		return
	}

	h.update(w, r, "set start time", func(it *services.Itinerary) {
		if req.StartTime != nil {
			it.SetStartTime(*req.StartTime)
			return
		}
		it.ShiftStartTime(*req.ShiftMinutes)
	})
}

func (h *ItineraryHandler) update(w http.ResponseWriter, r *http.Request, op string, fn func(*services.Itinerary)) {
	id := r.PathValue("id")

	view, err := h.Sessions.Update(r.Context(), id, fn)
	if err != nil {
		writeServiceError(w, r, op, err)
		return
	}

	writeJSON(w, r, http.StatusOK, h.toResponse(id, view, language(r)))
}

func (h *ItineraryHandler) toResponse(id string, view services.ItineraryView, lang string) dto.ItineraryResponse {
	timeline := make([]dto.TimelineEntryResponse, 0, len(view.Timeline))
	for _, e := range view.Timeline {
		cp := h.Translations.Localize(e.Checkpoint, lang)
		timeline = append(timeline, dto.TimelineEntryResponse{
			Checkpoint:          toCheckpointResponse(cp, h.Translations, lang),
			ArriveAt:            e.ArriveAt,
			DepartAt:            e.DepartAt,
			ArriveClock:         services.FormatClock(e.ArriveAt),
			DepartClock:         services.FormatClock(e.DepartAt),
			TravelMinutesToNext: e.TravelMinutesToNext,
		})
	}

	return dto.ItineraryResponse{
		ID:           id,
		Selection:    view.Selection,
		Timeline:     timeline,
		CurrentStep:  view.CurrentStep,
		Progress:     services.Progress(view.CurrentStep, len(view.Selection)),
		StartTime:    view.StartAt,
		TotalMinutes: view.TotalMinutes,
		TotalLabel:   services.FormatDuration(view.TotalMinutes),
		Boarding: dto.BoardingResponse{
			Deadline:      view.Boarding.Deadline,
			JourneyEnd:    view.Boarding.JourneyEnd,
			MarginMinutes: view.Boarding.MarginMinutes,
			MarginLabel:   view.Boarding.Label(),
			Warning:       view.Boarding.Warning,
		},
	}
}
