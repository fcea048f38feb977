package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"trivia-quiz-service/internal/domain"
)

// LeaderboardStore appends one leaderboard row per finished game and reads
// the top scores back ordered.
type LeaderboardStore struct {
	pool *pgxpool.Pool
}

func NewLeaderboardStore(pool *pgxpool.Pool) *LeaderboardStore {
	return &LeaderboardStore{pool: pool}
}

func (s *LeaderboardStore) SubmitScore(ctx context.Context, name string, score int) error {
	if _, err := s.pool.Exec(ctx,
		`INSERT INTO leaderboard (name, score) VALUES ($1, $2)`, name, score); err != nil {
		return fmt.Errorf("submit score: %w", err)
	}
	return nil
}

func (s *LeaderboardStore) Top(ctx context.Context, n int) (domain.Leaderboard, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT name, score, created_at FROM leaderboard ORDER BY score DESC, created_at ASC, name ASC LIMIT $1`, n)
	if err != nil {
		return domain.Leaderboard{}, fmt.Errorf("load leaderboard: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.LeaderboardEntry, 0, n)
	for rows.Next() {
		var entry domain.LeaderboardEntry
		if err := rows.Scan(&entry.Name, &entry.Score, &entry.SubmittedAt); err != nil {
			return domain.Leaderboard{}, fmt.Errorf("scan leaderboard row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return domain.Leaderboard{}, fmt.Errorf("load leaderboard: %w", err)
	}
	return domain.Leaderboard{Entries: entries, UpdatedAt: time.Now()}, nil
}
