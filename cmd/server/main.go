package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"coachassess/config"
	"coachassess/internal/cache"
	"coachassess/internal/repository"
	"coachassess/internal/service"
	"coachassess/internal/transport/rest"
	"coachassess/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	catalogRepo := repository.NewCatalogRepo(db)
	attemptRepo := repository.NewAttemptRepo(db)
	responseRepo := repository.NewResponseRepo(db)

	if err := attemptRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to create attempt indexes:", err)
	}

	// Initialize caches
	attemptCache := cache.NewAttemptCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	assessmentSvc := service.NewAssessmentService(catalogRepo, attemptRepo, responseRepo, attemptCache)
	resultsSvc := service.NewResultsService(catalogRepo, attemptRepo, responseRepo)

	// Inject broadcaster (wsHub implements assessment.Broadcaster)
	assessmentSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:       authSvc,
		AssessmentService: assessmentSvc,
		ResultsService:    resultsSvc,
		CatalogRepo:       catalogRepo,
		WSHub:             wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/enter")
		log.Println("  GET  /v1/catalog")
		log.Println("  GET  /v1/assessment/current")
		log.Println("  PUT  /v1/assessment/answer")
		log.Println("  POST /v1/assessment/next")
		log.Println("  POST /v1/assessment/previous")
		log.Println("  GET  /v1/attempts")
		log.Println("  GET  /v1/attempts/{id}/results")
		log.Println("  GET  /v1/results")
		log.Println("  WS   /v1/ws")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
