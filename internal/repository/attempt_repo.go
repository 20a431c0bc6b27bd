package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"coachassess/internal/model"
)

// AttemptRepo manages assessment attempts
type AttemptRepo interface {
	FetchOrCreate(ctx context.Context, userID string) (*model.Attempt, error)
	GetByID(ctx context.Context, id string) (*model.Attempt, error)
	GetLatestCompleted(ctx context.Context, userID string) (*model.Attempt, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Attempt, error)
	UpdateProgress(ctx context.Context, id string, currentIndex int) error
	MarkCompleted(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	EnsureIndexes(ctx context.Context) error
}

type attemptRepo struct {
	collection *mongo.Collection
}

// NewAttemptRepo creates a new attempt repository
func NewAttemptRepo(db *mongo.Database) AttemptRepo {
	return &attemptRepo{collection: db.Collection("assessments")}
}

// EnsureIndexes creates the partial unique index that guarantees at most one
// in-progress attempt per user. FetchOrCreate relies on it to resolve
// concurrent creation races.
func (r *attemptRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": model.AttemptInProgress}),
	})
	return err
}

// FetchOrCreate returns the user's in-progress attempt, creating one if none
// exists. Two devices racing on creation converge on a single attempt: the
// loser hits the unique index and re-fetches the winner's record.
func (r *attemptRepo) FetchOrCreate(ctx context.Context, userID string) (*model.Attempt, error) {
	existing, err := r.getInProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	now := time.Now()
	attempt := &model.Attempt{
		ID:           "att_" + uuid.New().String()[:8],
		UserID:       userID,
		Status:       model.AttemptInProgress,
		CurrentIndex: 0,
		StartedAt:    now,
		UpdatedAt:    now,
	}

	_, err = r.collection.InsertOne(ctx, attempt)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost the creation race; the other writer's attempt is canonical
			return r.getInProgress(ctx, userID)
		}
		return nil, fmt.Errorf("failed to create attempt: %w", err)
	}
	return attempt, nil
}

func (r *attemptRepo) getInProgress(ctx context.Context, userID string) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.collection.FindOne(ctx, bson.M{
		"userId": userID,
		"status": model.AttemptInProgress,
	}).Decode(&attempt)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepo) GetByID(ctx context.Context, id string) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&attempt)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepo) GetLatestCompleted(ctx context.Context, userID string) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.collection.FindOne(ctx,
		bson.M{"userId": userID, "status": model.AttemptCompleted},
		options.FindOne().SetSort(bson.M{"completedAt": -1}),
	).Decode(&attempt)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepo) ListByUser(ctx context.Context, userID string) ([]*model.Attempt, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"startedAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var attempts []*model.Attempt
	if err := cursor.All(ctx, &attempts); err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *attemptRepo) UpdateProgress(ctx context.Context, id string, currentIndex int) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"currentIndex": currentIndex,
			"updatedAt":    time.Now(),
		},
	})
	return err
}

func (r *attemptRepo) MarkCompleted(ctx context.Context, id string) error {
	now := time.Now()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"status":      model.AttemptCompleted,
			"completedAt": now,
			"updatedAt":   now,
		},
	})
	return err
}

func (r *attemptRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
