package handlers

import (
	"encoding/json"
	"net/http"

	"venue-finder/src/channel"
	"venue-finder/src/types"
)

// HandleAction exposes the mailbox: GET observes the pending action
// without consuming it, DELETE clears it (consumer acknowledgment),
// POST dispatches one directly, as a tap on a message's action button
// does.
func HandleAction(w http.ResponseWriter, r *http.Request, mailbox *channel.Mailbox) {
	switch r.Method {
	case http.MethodGet:
		pending, ok := mailbox.Observe()
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, pending)
	case http.MethodDelete:
		mailbox.Clear()
		w.WriteHeader(http.StatusNoContent)
	case http.MethodPost:
		var action types.StructuredAction
		if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}
		if action.Type != types.ActionNavigate && action.Type != types.ActionCityFilter {
			http.Error(w, "Unknown action type", http.StatusBadRequest)
			return
		}
		mailbox.Dispatch(action, "user")
		w.WriteHeader(http.StatusAccepted)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
