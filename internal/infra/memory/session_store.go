package memory

import (
	"sync"

	"trivia-quiz-service/internal/app"
)

// SessionStore is an in-memory implementation of app.SessionRepository.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*app.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*app.Session),
	}
}

func (s *SessionStore) GetOrCreate(sessionID string) *app.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[sessionID]; ok {
		return session
	}
	session := app.NewSession(sessionID)
	s.sessions[sessionID] = session
	return session
}

func (s *SessionStore) Get(sessionID string) (*app.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	return session, ok
}

func (s *SessionStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
