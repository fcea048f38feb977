package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/domain"
)

// LeaderboardCache decorates a LeaderboardStore with a Redis cache for top-N
// reads. Snapshots are stored as: SET trivia:leaderboard:top:{n} {json}.
// Submissions write through to the backing store and drop cached snapshots.
type LeaderboardCache struct {
	client *redis.Client
	store  app.LeaderboardStore
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewLeaderboardCache(client *redis.Client, store app.LeaderboardStore, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{
		client: client,
		store:  store,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *LeaderboardCache) SubmitScore(ctx context.Context, name string, score int) error {
	if err := c.store.SubmitScore(ctx, name, score); err != nil {
		return err
	}
	// Cached snapshots are stale now; drop them best-effort.
	keys, err := c.client.Keys(ctx, "trivia:leaderboard:top:*").Result()
	if err == nil && len(keys) > 0 {
		_ = c.client.Del(ctx, keys...).Err()
	}
	return nil
}

func (c *LeaderboardCache) Top(ctx context.Context, n int) (domain.Leaderboard, error) {
	key := c.topKey(n)

	if raw, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var lb domain.Leaderboard
		if err := json.Unmarshal(raw, &lb); err == nil {
			return lb, nil
		}
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if raw, err := c.client.Get(ctx, key).Bytes(); err == nil {
			var lb domain.Leaderboard
			if err := json.Unmarshal(raw, &lb); err == nil {
				return lb, nil
			}
		}

		lb, err := c.store.Top(ctx, n)
		if err != nil {
			return domain.Leaderboard{}, err
		}

		if raw, err := json.Marshal(lb); err == nil {
			_ = c.client.Set(ctx, key, raw, c.ttlWithJitter()).Err()
		}
		return lb, nil
	})
	if err != nil {
		return domain.Leaderboard{}, err
	}
	return result.(domain.Leaderboard), nil
}

func (c *LeaderboardCache) topKey(n int) string {
	return fmt.Sprintf("trivia:leaderboard:top:%d", n)
}

func (c *LeaderboardCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
