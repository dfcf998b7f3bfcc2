package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"venue-finder/src/ai"
	"venue-finder/src/logger"
	"venue-finder/src/metrics"
	"venue-finder/src/types"
)

// HandleVibe serves /api/vibe/{id}: an AI-flavoured blurb for the
// venue. A collaborator failure is substituted with a canned fallback,
// never surfaced as a technical error.
func HandleVibe(w http.ResponseWriter, r *http.Request, store types.VenueStore, generator ai.VibeGenerator) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/vibe/")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Location not found", http.StatusNotFound)
		return
	}
	venue, ok := store.ByID(id)
	if !ok {
		http.Error(w, "Location not found", http.StatusNotFound)
		return
	}

	vibe, err := generator.GenerateVibe(r.Context(), venue.Name, venue.ShortDescription)
	if err != nil {
		logger.L().Warn("vibe generation failed", "venue", venue.Name, "err", err)
		metrics.CollaboratorFailuresTotal.WithLabelValues("vibe").Inc()
		vibe = ai.FallbackVibe
	}

	writeJSON(w, map[string]string{"vibe": vibe})
}

type translateRequest struct {
	Text string `json:"text"`
}

func HandleTranslate(w http.ResponseWriter, r *http.Request, translator ai.Translator) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	translation, err := translator.Translate(r.Context(), req.Text)
	if err != nil {
		logger.L().Warn("translation failed", "err", err)
		metrics.CollaboratorFailuresTotal.WithLabelValues("translate").Inc()
		translation = ai.FallbackTranslation
	}

	writeJSON(w, map[string]string{"translation": translation})
}
