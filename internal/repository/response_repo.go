package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"coachassess/internal/model"
)

// ResponseRepo manages per-question responses within an attempt
type ResponseRepo interface {
	Upsert(ctx context.Context, attemptID string, questionID, value int) error
	GetByAttempt(ctx context.Context, attemptID string) ([]*model.Response, error)
	MapByAttempt(ctx context.Context, attemptID string) (map[int]int, error)
	DeleteByAttempt(ctx context.Context, attemptID string) error
}

type responseRepo struct {
	collection *mongo.Collection
}

// NewResponseRepo creates a new response repository
func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{collection: db.Collection("assessment_responses")}
}

// Upsert writes the single current response for (attemptID, questionID).
// Re-answering a question overwrites, it never duplicates.
func (r *responseRepo) Upsert(ctx context.Context, attemptID string, questionID, value int) error {
	filter := bson.M{"attemptId": attemptID, "questionId": questionID}
	update := bson.M{
		"$set": bson.M{
			"value":      value,
			"answeredAt": time.Now(),
		},
		"$setOnInsert": bson.M{
			"_id":        "resp_" + uuid.New().String()[:8],
			"attemptId":  attemptID,
			"questionId": questionID,
		},
	}
	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *responseRepo) GetByAttempt(ctx context.Context, attemptID string) ([]*model.Response, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"attemptId": attemptID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []*model.Response
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

// MapByAttempt returns the sparse questionID -> value map the scoring engine
// consumes
func (r *responseRepo) MapByAttempt(ctx context.Context, attemptID string) (map[int]int, error) {
	responses, err := r.GetByAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	m := make(map[int]int, len(responses))
	for _, resp := range responses {
		m[resp.QuestionID] = resp.Value
	}
	return m, nil
}

func (r *responseRepo) DeleteByAttempt(ctx context.Context, attemptID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"attemptId": attemptID})
	return err
}
