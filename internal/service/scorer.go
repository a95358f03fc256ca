package service

import (
	"reflect"

	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/model"
)

// Scorer computes a submission's score from the answer sequence and the
// question set. It is an interface so the positional scheme can be
// swapped for an identifier-based one without touching callers.
type Scorer interface {
	Score(answers []interface{}, questions []model.Question) int
}

// positionalScorer matches answer i against question i by array index.
// There are no stable question identifiers: the store's document order
// defines the pairing.
type positionalScorer struct{}

// NewPositionalScorer creates the default scorer.
func NewPositionalScorer() Scorer {
	return positionalScorer{}
}

// Score counts exact matches between answers[i] and
// questions[i].correctAnswer. A short answer array leaves the tail
// questions uncounted; extra answers beyond the question set are
// ignored.
func (positionalScorer) Score(answers []interface{}, questions []model.Question) int {
	score := 0
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		correct, ok := q.CorrectAnswer()
		if !ok {
			continue
		}
		if reflect.DeepEqual(correct, answers[i]) {
			score++
		}
	}
	return score
}
