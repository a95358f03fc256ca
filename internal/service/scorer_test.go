package service_test

import (
	"testing"

	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/model"
	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/service"
)

func questionsWith(answers ...interface{}) []model.Question {
	qs := make([]model.Question, len(answers))
	for i, a := range answers {
		qs[i] = model.Question{"text": "q", "correctAnswer": a}
	}
	return qs
}

func TestScoreCountsPositionalMatches(t *testing.T) {
	scorer := service.NewPositionalScorer()

	questions := questionsWith("a0", "x", "a2")
	score := scorer.Score([]interface{}{"a0", "a1", "a2"}, questions)
	if score != 2 {
		t.Fatalf("expected score 2, got %d", score)
	}
}

func TestScoreIgnoresUnansweredTail(t *testing.T) {
	scorer := service.NewPositionalScorer()

	questions := questionsWith("a", "b", "c")
	score := scorer.Score([]interface{}{"a"}, questions)
	if score != 1 {
		t.Fatalf("expected score 1, got %d", score)
	}
}

func TestScoreIgnoresExtraAnswers(t *testing.T) {
	scorer := service.NewPositionalScorer()

	questions := questionsWith("a")
	score := scorer.Score([]interface{}{"a", "b", "c"}, questions)
	if score != 1 {
		t.Fatalf("expected score 1, got %d", score)
	}
}

func TestScoreSkipsQuestionsWithoutCorrectAnswer(t *testing.T) {
	scorer := service.NewPositionalScorer()

	questions := []model.Question{
		{"text": "no answer recorded"},
		{"text": "q", "correctAnswer": "b"},
	}
	score := scorer.Score([]interface{}{"anything", "b"}, questions)
	if score != 1 {
		t.Fatalf("expected score 1, got %d", score)
	}
}

func TestScoreMatchesNonStringAnswers(t *testing.T) {
	scorer := service.NewPositionalScorer()

	// JSON numbers decode as float64 on both the ingestion and the
	// submission path, so numeric answers compare cleanly.
	questions := questionsWith(float64(4), true)
	score := scorer.Score([]interface{}{float64(4), true}, questions)
	if score != 2 {
		t.Fatalf("expected score 2, got %d", score)
	}
}
