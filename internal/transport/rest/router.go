package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"coachassess/internal/repository"
	"coachassess/internal/service"
	"coachassess/internal/transport/rest/handler"
	"coachassess/internal/transport/rest/middleware"
	"coachassess/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	AssessmentService *service.AssessmentService
	ResultsService    *service.ResultsService
	CatalogRepo       repository.CatalogRepo
	WSHub             *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	catalogHandler := handler.NewCatalogHandler(c.CatalogRepo)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	resultsHandler := handler.NewResultsHandler(c.ResultsService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/enter", authHandler.Enter).Methods("POST", "OPTIONS")

	// WebSocket route (public with token in query param)
	v1.HandleFunc("/ws", wsHandler.Connect).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Participant routes (require token)
	participant := v1.NewRoute().Subrouter()
	participant.Use(authMW.RequireParticipant)

	participant.HandleFunc("/catalog", catalogHandler.Get).Methods("GET", "OPTIONS")

	participant.HandleFunc("/assessment/current", assessmentHandler.Current).Methods("GET", "OPTIONS")
	participant.HandleFunc("/assessment/answer", assessmentHandler.Answer).Methods("PUT", "OPTIONS")
	participant.HandleFunc("/assessment/next", assessmentHandler.Next).Methods("POST", "OPTIONS")
	participant.HandleFunc("/assessment/previous", assessmentHandler.Previous).Methods("POST", "OPTIONS")

	participant.HandleFunc("/attempts", assessmentHandler.History).Methods("GET", "OPTIONS")
	participant.HandleFunc("/attempts/{attemptId}", assessmentHandler.Delete).Methods("DELETE", "OPTIONS")
	participant.HandleFunc("/attempts/{attemptId}/results", resultsHandler.Get).Methods("GET", "OPTIONS")
	participant.HandleFunc("/results", resultsHandler.Latest).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
