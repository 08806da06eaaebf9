package models

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one browser session's server-side state: its cart, its
// checkout draft and its geolocation probe. Sessions are anonymous and
// live only as long as the process.
type Session struct {
	ID        string
	Cart      *Cart
	Probe     *LocationProbe
	CreatedAt time.Time

	mu    sync.Mutex
	draft DeliveryDraft
}

func newSession(id string) *Session {
	return &Session{
		ID:        id,
		Cart:      NewCart(),
		Probe:     NewLocationProbe(),
		CreatedAt: time.Now(),
		draft:     DefaultDeliveryDraft(),
	}
}

// Draft returns a copy of the current delivery draft.
func (s *Session) Draft() DeliveryDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// SetDraft replaces the delivery draft. Leaving delivery mode discards
// any coordinate the probe holds, so a later switch back to delivery
// starts with no position.
func (s *Session) SetDraft(draft DeliveryDraft) {
	s.mu.Lock()
	leftDelivery := s.draft.Mode == ModeDelivery && draft.Mode != ModeDelivery
	s.draft = draft
	s.mu.Unlock()

	if leftDelivery {
		s.Probe.Discard()
	}
}

// ResetDraft puts the draft back to defaults and discards any captured
// coordinate. Used after a checkout hand-off and on cart clear.
func (s *Session) ResetDraft() {
	s.mu.Lock()
	s.draft = DefaultDeliveryDraft()
	s.mu.Unlock()
	s.Probe.Discard()
}

// SessionStore hands out sessions keyed by their id, creating them on
// first use. Safe for concurrent access.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// GetOrCreate returns the session for id, creating it if needed. An
// empty id gets a fresh uuid. The returned id is the one the session
// is actually stored under.
func (st *SessionStore) GetOrCreate(id string) *Session {
	if id == "" {
		id = uuid.NewString()
	}

	st.mu.RLock()
	sess, ok := st.sessions[id]
	st.mu.RUnlock()
	if ok {
		return sess
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if sess, ok := st.sessions[id]; ok {
		return sess
	}
	sess = newSession(id)
	st.sessions[id] = sess
	return sess
}

// Get returns the session for id, or nil if it does not exist.
func (st *SessionStore) Get(id string) *Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[id]
}

// Len reports how many sessions are currently held.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
