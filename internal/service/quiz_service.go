package service

import (
	"context"

	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/model"
	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/repository"
)

// QuizService handles question ingestion, retrieval and submission
// scoring for one quiz instance. The two instances ("quiz" and "quiz2")
// are separate services bound to separate collections but share one
// leaderboard.
type QuizService struct {
	questions   repository.QuestionRepo
	leaderboard *LeaderboardService
	scorer      Scorer
}

// NewQuizService creates a quiz service for one instance.
func NewQuizService(questions repository.QuestionRepo, leaderboard *LeaderboardService, scorer Scorer) *QuizService {
	return &QuizService{
		questions:   questions,
		leaderboard: leaderboard,
		scorer:      scorer,
	}
}

// AddQuestions bulk-inserts the documents verbatim. Shape validation is
// the caller's problem; only correctAnswer is ever read back.
func (s *QuizService) AddQuestions(ctx context.Context, questions []model.Question) error {
	return s.questions.AddMany(ctx, questions)
}

// ListQuestions returns every question in store order.
func (s *QuizService) ListQuestions(ctx context.Context) ([]model.Question, error) {
	questions, err := s.questions.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if questions == nil {
		questions = []model.Question{}
	}
	return questions, nil
}

// Submit scores the answers against the current question set and
// records the result on the leaderboard. The score replaces any
// previous entry for the username, even a higher one.
func (s *QuizService) Submit(ctx context.Context, username string, answers []interface{}) (int, error) {
	questions, err := s.questions.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	score := s.scorer.Score(answers, questions)

	if err := s.leaderboard.Upsert(ctx, username, score); err != nil {
		return 0, err
	}
	return score, nil
}
