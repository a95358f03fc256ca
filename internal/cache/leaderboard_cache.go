package cache

import (
	"context"

	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/model"
	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "leaderboard"

// LeaderboardCache mirrors the leaderboard collection in a Redis ZSET
// so top-N reads skip Mongo. Mongo stays the source of truth; the
// mirror is write-through and rebuilt on demand.
type LeaderboardCache interface {
	SetScore(ctx context.Context, username string, score int) error
	Top(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)
	Rebuild(ctx context.Context, entries []model.LeaderboardEntry) error
}

type leaderboardCache struct {
	client *redis.Client
}

// NewLeaderboardCache creates a new leaderboard cache
func NewLeaderboardCache(client *redis.Client) LeaderboardCache {
	return &leaderboardCache{client: client}
}

// SetScore overwrites the member's score. ZAdd, not ZIncrBy: the board
// is last-write-wins, never additive.
func (c *leaderboardCache) SetScore(ctx context.Context, username string, score int) error {
	return c.client.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(score),
		Member: username,
	}).Err()
}

func (c *leaderboardCache) Top(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]model.LeaderboardEntry, len(results))
	for i, z := range results {
		entries[i] = model.LeaderboardEntry{
			Username: z.Member.(string),
			Score:    int(z.Score),
		}
	}
	return entries, nil
}

// Rebuild repopulates the mirror from store entries after a cold start
// or cache miss.
func (c *leaderboardCache) Rebuild(ctx context.Context, entries []model.LeaderboardEntry) error {
	members := make([]redis.Z, len(entries))
	for i, e := range entries {
		members[i] = redis.Z{Score: float64(e.Score), Member: e.Username}
	}
	if len(members) == 0 {
		return nil
	}
	return c.client.ZAdd(ctx, leaderboardKey, members...).Err()
}
