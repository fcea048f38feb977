package redis

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"trivia-quiz-service/internal/app"
)

// SessionStore is a Redis-aware implementation of app.SessionRepository.
// Notes:
//   - Sessions themselves stay in a local in-process map; the state machine
//     is synchronous and owned by one instance.
//   - Redis marks session liveness with a TTL so operators can see active
//     games across instances (and stale IDs age out on their own).
type SessionStore struct {
	client   *redis.Client
	ttl      time.Duration
	mu       sync.RWMutex
	sessions map[string]*app.Session
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client:   client,
		ttl:      ttl,
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
	// best-effort liveness marker
	_ = s.client.Set(context.Background(), s.key(sessionID), "1", s.ttl).Err()
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
	if _, ok := s.sessions[sessionID]; !ok {
		return
	}
	delete(s.sessions, sessionID)
	_ = s.client.Del(context.Background(), s.key(sessionID)).Err()
}

func (s *SessionStore) key(sessionID string) string {
	return "trivia:session:" + sessionID
}
