package api

import (
	"net/http"
	"terminal-itinerary-service/internal/api/handlers"
	"terminal-itinerary-service/internal/domain"
	"terminal-itinerary-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	catalog *domain.Catalog,
	translations domain.Translations,
	sessions *services.ItinerarySessions,
	suggester *services.Suggester,
) http.Handler {
	mux := http.NewServeMux()

	checkpoints := &handlers.CheckpointHandler{Catalog: catalog, Translations: translations}
	itineraries := &handlers.ItineraryHandler{Sessions: sessions, Translations: translations}
	suggestions := &handlers.SuggestionHandler{
		Sessions:     sessions,
		Suggester:    suggester,
		Translations: translations,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("GET /checkpoints", checkpoints.List)

	mux.HandleFunc("POST /itineraries", itineraries.Create)
	mux.HandleFunc("GET /itineraries/{id}", itineraries.Get)
	mux.HandleFunc("DELETE /itineraries/{id}", itineraries.Delete)
	mux.HandleFunc("POST /itineraries/{id}/checkpoints", itineraries.AddCheckpoints)
	mux.HandleFunc("DELETE /itineraries/{id}/checkpoints/{checkpointID}", itineraries.RemoveCheckpoint)
	mux.HandleFunc("POST /itineraries/{id}/checkpoints/{checkpointID}/toggle", itineraries.ToggleCheckpoint)
	mux.HandleFunc("POST /itineraries/{id}/reset", itineraries.Reset)
	mux.HandleFunc("PUT /itineraries/{id}/step", itineraries.SetStep)
	mux.HandleFunc("PUT /itineraries/{id}/start-time", itineraries.SetStartTime)
	mux.HandleFunc("POST /itineraries/{id}/suggestions", suggestions.Suggest)

	return requestIDMiddleware(loggingMiddleware(mux))
}
