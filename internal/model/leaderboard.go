package model

// LeaderboardEntry is one row of the shared leaderboard, keyed by
// username. Both quiz instances write to the same board.
type LeaderboardEntry struct {
	Username string `json:"username" bson:"username"`
	Score    int    `json:"score" bson:"score"`
}
