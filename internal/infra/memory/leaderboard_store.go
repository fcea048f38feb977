package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"trivia-quiz-service/internal/domain"
)

// LeaderboardStore keeps score submissions in memory, one entry per
// play-through. Useful when no postgres backend is configured.
type LeaderboardStore struct {
	clock func() time.Time

	mu      sync.RWMutex
	entries []domain.LeaderboardEntry
}

func NewLeaderboardStore() *LeaderboardStore {
	return &LeaderboardStore{clock: time.Now}
}

// NewLeaderboardStoreWithClock is test-only for deterministic timestamps.
func NewLeaderboardStoreWithClock(now func() time.Time) *LeaderboardStore {
	return &LeaderboardStore{clock: now}
}

func (s *LeaderboardStore) SubmitScore(_ context.Context, name string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, domain.LeaderboardEntry{
		Name:        name,
		Score:       score,
		SubmittedAt: s.clock(),
	})
	return nil
}

func (s *LeaderboardStore) Top(_ context.Context, n int) (domain.Leaderboard, error) {
	s.mu.RLock()
	entries := make([]domain.LeaderboardEntry, len(s.entries))
	copy(entries, s.entries)
	s.mu.RUnlock()

	// Score descending, earlier submission wins ties, then name.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		if !entries[i].SubmittedAt.Equal(entries[j].SubmittedAt) {
			return entries[i].SubmittedAt.Before(entries[j].SubmittedAt)
		}
		return entries[i].Name < entries[j].Name
	})

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return domain.Leaderboard{Entries: entries, UpdatedAt: s.clock()}, nil
}
