package uistate

import "sync"

// Store keeps one State per session id. Sessions are in-memory only; there
// is no persistence across restarts, matching the rest of the system.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]State
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]State)}
}

// Get returns the state for a session, falling back to Initial() for
// sessions never seen before.
func (s *Store) Get(sessionID string) State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if state, ok := s.sessions[sessionID]; ok {
		return state
	}
	return Initial()
}

// Apply runs a reducer against the session's current state and stores the
// result, returning the successor state.
func (s *Store) Apply(sessionID string, reduce func(State) State) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.sessions[sessionID]
	if !ok {
		current = Initial()
	}
	next := reduce(current)
	s.sessions[sessionID] = next
	return next
}

// Drop removes a session.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
