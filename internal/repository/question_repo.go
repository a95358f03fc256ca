package repository

import (
	"context"

	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/database"
	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
)

// QuestionRepo handles MongoDB operations for one quiz instance's
// question collection. The two quiz instances are structurally
// identical and differ only in the collection they are bound to.
type QuestionRepo interface {
	AddMany(ctx context.Context, questions []model.Question) error
	GetAll(ctx context.Context) ([]model.Question, error)
}

type questionRepo struct {
	gw         *database.Gateway
	collection string
}

// NewQuestionRepo creates a question repository bound to a collection
// ("quiz" or "quiz2").
func NewQuestionRepo(gw *database.Gateway, collection string) QuestionRepo {
	return &questionRepo{gw: gw, collection: collection}
}

func (r *questionRepo) AddMany(ctx context.Context, questions []model.Question) error {
	col, err := r.gw.Collection(r.collection)
	if err != nil {
		return err
	}

	docs := make([]interface{}, len(questions))
	for i, q := range questions {
		docs[i] = q
	}

	_, err = col.InsertMany(ctx, docs)
	return err
}

// GetAll returns every question document in store order. Store order is
// load-bearing: submissions are scored by matching answer index i
// against question i.
func (r *questionRepo) GetAll(ctx context.Context) ([]model.Question, error) {
	col, err := r.gw.Collection(r.collection)
	if err != nil {
		return nil, err
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []model.Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}
