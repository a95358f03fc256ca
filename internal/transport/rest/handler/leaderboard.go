package handler

import (
	"net/http"

	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/service"
)

// LeaderboardHandler handles leaderboard reads
type LeaderboardHandler struct {
	lbSvc *service.LeaderboardService
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(lbSvc *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{lbSvc: lbSvc}
}

// Get handles GET /leaderboard and GET /quiz2/leaderboard — both serve
// the one shared board.
func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	entries, err := h.lbSvc.Top(r.Context(), service.TopSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"leaderboard": entries})
}
