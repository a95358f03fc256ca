package repository

import (
	"context"

	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/database"
	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LeaderboardRepo handles MongoDB operations for the shared leaderboard
// collection. One entry per username; both quiz instances write here.
type LeaderboardRepo interface {
	Upsert(ctx context.Context, username string, score int) error
	Top(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)
}

type leaderboardRepo struct {
	gw *database.Gateway
}

// NewLeaderboardRepo creates a new leaderboard repository
func NewLeaderboardRepo(gw *database.Gateway) LeaderboardRepo {
	return &leaderboardRepo{gw: gw}
}

// Upsert overwrites the user's score unconditionally. The most recent
// submission wins even when it is lower than the stored one.
func (r *leaderboardRepo) Upsert(ctx context.Context, username string, score int) error {
	col, err := r.gw.Collection("leaderboard")
	if err != nil {
		return err
	}

	_, err = col.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$set": bson.M{"username": username, "score": score}},
		options.Update().SetUpsert(true),
	)
	return err
}

// Top returns up to limit entries sorted by score descending. Ties keep
// store order.
func (r *leaderboardRepo) Top(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	col, err := r.gw.Collection("leaderboard")
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "score", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []model.LeaderboardEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
