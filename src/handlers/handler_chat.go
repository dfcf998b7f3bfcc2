package handlers

import (
	"encoding/json"
	"net/http"

	"venue-finder/src/channel"
	"venue-finder/src/chatbot"
	"venue-finder/src/metrics"
)

type chatRequest struct {
	Message string `json:"message"`
}

// HandleChat runs the intent matcher over a user message and appends
// both sides of the exchange to the session log. A produced action is
// dispatched to the mailbox right away, so the explore surface can
// pick it up.
func HandleChat(w http.ResponseWriter, r *http.Request, session *chatbot.Session, matcher *chatbot.Matcher, mailbox *channel.Mailbox) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, map[string]interface{}{"messages": session.Messages()})
	case http.MethodPost:
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}

		metrics.ChatMessagesTotal.Inc()
		session.Append("user", req.Message, nil)

		reply := matcher.Respond(req.Message)
		botMsg := session.Append("bot", reply.Text, reply.Action)

		if reply.Action != nil {
			metrics.ChatActionsTotal.WithLabelValues(reply.Action.Type).Inc()
			mailbox.Dispatch(*reply.Action, "chatbot")
		}

		writeJSON(w, botMsg)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
