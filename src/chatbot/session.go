package chatbot

import (
	"sync"

	"github.com/google/uuid"

	"venue-finder/src/types"
)

const greeting = "Salut! Sunt asistentul tău virtual. Cum te pot ajuta?"

// Session is the append-only chat message log. Messages are never
// mutated after creation, only appended.
type Session struct {
	mu       sync.Mutex
	messages []types.ChatMessage
}

func NewSession() *Session {
	s := &Session{}
	s.Append("bot", greeting, nil)
	return s
}

func (s *Session) Append(sender, text string, action *types.StructuredAction) types.ChatMessage {
	msg := types.ChatMessage{
		ID:     uuid.NewString(),
		Text:   text,
		Sender: sender,
		Action: action,
	}
	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
	return msg
}

func (s *Session) Messages() []types.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.ChatMessage(nil), s.messages...)
}
