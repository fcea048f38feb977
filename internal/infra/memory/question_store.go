package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"trivia-quiz-service/internal/domain"
)

// QuestionLoader fetches the full question pool from a backing store.
type QuestionLoader interface {
	LoadQuestions(ctx context.Context) ([]domain.Question, error)
}

// QuestionStore caches the question pool with a TTL and serves a random
// batch per fetch, avoiding a pool load for every game.
type QuestionStore struct {
	loader    QuestionLoader
	batchSize int
	ttl       time.Duration
	clock     func() time.Time
	sf        singleflight.Group

	mu        sync.RWMutex
	pool      []domain.Question
	expiresAt time.Time
	rnd       *rand.Rand
}

func NewQuestionStore(loader QuestionLoader, batchSize int, ttl time.Duration) *QuestionStore {
	return &QuestionStore{
		loader:    loader,
		batchSize: batchSize,
		ttl:       ttl,
		clock:     time.Now,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// FetchBatch returns up to batchSize questions sampled from the cached pool.
func (s *QuestionStore) FetchBatch(ctx context.Context) ([]domain.Question, error) {
	pool, err := s.loadPool(ctx)
	if err != nil {
		return nil, err
	}
	return s.sample(pool), nil
}

func (s *QuestionStore) loadPool(ctx context.Context) ([]domain.Question, error) {
	now := s.clock()

	s.mu.RLock()
	if s.pool != nil && s.expiresAt.After(now) {
		pool := s.pool
		s.mu.RUnlock()
		return pool, nil
	}
	s.mu.RUnlock()

	result, err, _ := s.sf.Do("pool", func() (interface{}, error) {
		now := s.clock()
		s.mu.RLock()
		if s.pool != nil && s.expiresAt.After(now) {
			pool := s.pool
			s.mu.RUnlock()
			return pool, nil
		}
		s.mu.RUnlock()

		pool, err := s.loader.LoadQuestions(ctx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.pool = pool
		s.expiresAt = now.Add(s.ttlWithJitter())
		s.mu.Unlock()
		return pool, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Question), nil
}

func (s *QuestionStore) sample(pool []domain.Question) []domain.Question {
	s.mu.Lock()
	defer s.mu.Unlock()

	indexes := s.rnd.Perm(len(pool))
	n := s.batchSize
	if n > len(pool) {
		n = len(pool)
	}
	batch := make([]domain.Question, 0, n)
	for _, i := range indexes[:n] {
		batch = append(batch, pool[i])
	}
	return batch
}

func (s *QuestionStore) ttlWithJitter() time.Duration {
	if s.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(s.ttl) / 10
	return s.ttl + time.Duration(s.rnd.Int63n(jitterMax+1))
}
