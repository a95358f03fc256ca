package service

import (
	"context"
	"log"

	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/cache"
	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/model"
	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/repository"
)

// TopSize is how many entries leaderboard reads return.
const TopSize = 10

// Broadcaster pushes leaderboard updates to live subscribers. The
// websocket hub implements it.
type Broadcaster interface {
	BroadcastLeaderboard(entries []model.LeaderboardEntry)
}

// LeaderboardService owns the shared leaderboard: overwrite upserts on
// submission and ranked top-N reads. Mongo is the source of truth; the
// Redis mirror, when available, serves the read path.
type LeaderboardService struct {
	repo        repository.LeaderboardRepo
	cache       cache.LeaderboardCache // nil when Redis is unavailable
	broadcaster Broadcaster
}

// NewLeaderboardService creates a new leaderboard service. cache may be
// nil, in which case all reads go to the store.
func NewLeaderboardService(repo repository.LeaderboardRepo, cache cache.LeaderboardCache) *LeaderboardService {
	return &LeaderboardService{repo: repo, cache: cache}
}

// SetBroadcaster injects the live-update sink.
func (s *LeaderboardService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Upsert overwrites the user's score unconditionally, mirrors it into
// the cache and notifies live subscribers with the refreshed top-N.
func (s *LeaderboardService) Upsert(ctx context.Context, username string, score int) error {
	if err := s.repo.Upsert(ctx, username, score); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.SetScore(ctx, username, score); err != nil {
			log.Printf("leaderboard cache update failed: %v", err)
		}
	}

	if s.broadcaster != nil {
		entries, err := s.Top(ctx, TopSize)
		if err != nil {
			log.Printf("leaderboard broadcast skipped: %v", err)
			return nil
		}
		s.broadcaster.BroadcastLeaderboard(entries)
	}
	return nil
}

// Top returns up to limit entries, highest score first. The Redis
// mirror answers when warm; otherwise the store is read and the mirror
// rehydrated.
func (s *LeaderboardService) Top(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	if s.cache != nil {
		entries, err := s.cache.Top(ctx, limit)
		if err != nil {
			log.Printf("leaderboard cache read failed: %v", err)
		} else if len(entries) > 0 {
			return entries, nil
		}
	}

	entries, err := s.repo.Top(ctx, limit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.LeaderboardEntry{}
	}

	if s.cache != nil && len(entries) > 0 {
		if err := s.cache.Rebuild(ctx, entries); err != nil {
			log.Printf("leaderboard cache rebuild failed: %v", err)
		}
	}
	return entries, nil
}
