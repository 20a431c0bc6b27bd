package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"coachassess/internal/model"
)

// CatalogRepo serves the static domain and question reference data
type CatalogRepo interface {
	ListDomains(ctx context.Context) ([]model.Domain, error)
	ListQuestions(ctx context.Context) ([]model.Question, error)
	ReplaceCatalog(ctx context.Context, domains []model.Domain, questions []model.Question) error
}

type catalogRepo struct {
	domains   *mongo.Collection
	questions *mongo.Collection
}

// NewCatalogRepo creates a new catalog repository
func NewCatalogRepo(db *mongo.Database) CatalogRepo {
	return &catalogRepo{
		domains:   db.Collection("domains"),
		questions: db.Collection("questions"),
	}
}

func (r *catalogRepo) ListDomains(ctx context.Context) ([]model.Domain, error) {
	cursor, err := r.domains.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var domains []model.Domain
	if err := cursor.All(ctx, &domains); err != nil {
		return nil, err
	}
	return domains, nil
}

func (r *catalogRepo) ListQuestions(ctx context.Context) ([]model.Question, error) {
	cursor, err := r.questions.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
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

// ReplaceCatalog wipes and reloads the reference data. Used by the seeder.
func (r *catalogRepo) ReplaceCatalog(ctx context.Context, domains []model.Domain, questions []model.Question) error {
	if _, err := r.domains.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if _, err := r.questions.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	domainDocs := make([]interface{}, len(domains))
	for i, d := range domains {
		domainDocs[i] = d
	}
	if _, err := r.domains.InsertMany(ctx, domainDocs); err != nil {
		return err
	}

	questionDocs := make([]interface{}, len(questions))
	for i, q := range questions {
		questionDocs[i] = q
	}
	_, err := r.questions.InsertMany(ctx, questionDocs)
	return err
}
