package service_test

import (
	"context"
	"sort"

	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/model"
	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes with the same contract as the Mongo
// implementations.

type memUserRepo struct {
	users []*model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{}
}

func (r *memUserRepo) Create(_ context.Context, user *model.User) (string, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	stored := *user
	r.users = append(r.users, &stored)
	return user.ID.Hex(), nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range r.users {
		if u.ID.Hex() == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memUserRepo) UpdateProfileByID(_ context.Context, id string, upd repository.ProfileUpdate) error {
	for _, u := range r.users {
		if u.ID.Hex() == id {
			applyUpdate(u, upd)
		}
	}
	return nil
}

func (r *memUserRepo) UpdateProfileByUsername(_ context.Context, username string, upd repository.ProfileUpdate) error {
	for _, u := range r.users {
		if u.Username == username {
			applyUpdate(u, upd)
		}
	}
	return nil
}

func applyUpdate(u *model.User, upd repository.ProfileUpdate) {
	if upd.Avatar != nil {
		u.Profile.Avatar = *upd.Avatar
	}
	if upd.PasswordHash != nil {
		u.Password = *upd.PasswordHash
	}
}

type memQuestionRepo struct {
	questions []model.Question
}

func (r *memQuestionRepo) AddMany(_ context.Context, questions []model.Question) error {
	r.questions = append(r.questions, questions...)
	return nil
}

func (r *memQuestionRepo) GetAll(_ context.Context) ([]model.Question, error) {
	return r.questions, nil
}

type memLeaderboardRepo struct {
	order  []string
	scores map[string]int
}

func newMemLeaderboardRepo() *memLeaderboardRepo {
	return &memLeaderboardRepo{scores: make(map[string]int)}
}

func (r *memLeaderboardRepo) Upsert(_ context.Context, username string, score int) error {
	if _, ok := r.scores[username]; !ok {
		r.order = append(r.order, username)
	}
	r.scores[username] = score
	return nil
}

func (r *memLeaderboardRepo) Top(_ context.Context, limit int) ([]model.LeaderboardEntry, error) {
	entries := make([]model.LeaderboardEntry, 0, len(r.order))
	for _, username := range r.order {
		entries = append(entries, model.LeaderboardEntry{Username: username, Score: r.scores[username]})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

type recordingBroadcaster struct {
	broadcasts [][]model.LeaderboardEntry
}

func (b *recordingBroadcaster) BroadcastLeaderboard(entries []model.LeaderboardEntry) {
	b.broadcasts = append(b.broadcasts, entries)
}
