package channel

import (
	"sync"
	"time"

	"venue-finder/src/types"
)

// Dispatched wraps a StructuredAction with provenance.
type Dispatched struct {
	Action       types.StructuredAction `json:"action"`
	Source       string                 `json:"source"`
	DispatchedAt time.Time              `json:"dispatched_at"`
}

// Mailbox is a single-slot relay from the chat surface to the explore
// surface: a new dispatch overwrites any unconsumed value, and the
// consumer clears the slot after acting on it, so each action takes
// effect at most once.
type Mailbox struct {
	mu      sync.Mutex
	pending *Dispatched
}

func NewMailbox() *Mailbox {
	return &Mailbox{}
}

func (m *Mailbox) Dispatch(action types.StructuredAction, source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = &Dispatched{
		Action:       action,
		Source:       source,
		DispatchedAt: time.Now(),
	}
}

// Observe returns the pending action without consuming it.
func (m *Mailbox) Observe() (Dispatched, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pending == nil {
		return Dispatched{}, false
	}
	return *m.pending, true
}

// Clear empties the slot. Clearing an empty mailbox is a no-op.
func (m *Mailbox) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = nil
}
