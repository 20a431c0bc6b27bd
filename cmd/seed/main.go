package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"coachassess/config"
	"coachassess/internal/catalog"
	"coachassess/internal/repository"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)

	domains := catalog.Domains()
	questions := catalog.Questions()

	catalogRepo := repository.NewCatalogRepo(db)
	if err := catalogRepo.ReplaceCatalog(ctx, domains, questions); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	attemptRepo := repository.NewAttemptRepo(db)
	if err := attemptRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create attempt indexes: %v", err)
	}

	fmt.Printf("Seeded %d domains and %d questions\n", len(domains), len(questions))
}
