package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"coachassess/internal/service"
	"coachassess/internal/transport/rest/middleware"
)

// ResultsHandler serves scored results for completed attempts
type ResultsHandler struct {
	resultsSvc *service.ResultsService
}

// NewResultsHandler creates a new results handler
func NewResultsHandler(resultsSvc *service.ResultsService) *ResultsHandler {
	return &ResultsHandler{resultsSvc: resultsSvc}
}

// Latest handles GET /v1/results: the most recent completed attempt
func (h *ResultsHandler) Latest(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	results, err := h.resultsSvc.GetLatestResults(r.Context(), userID)
	if err != nil {
		writeResultsError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, results)
}

// Get handles GET /v1/attempts/{attemptId}/results
func (h *ResultsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	attemptID := mux.Vars(r)["attemptId"]

	results, err := h.resultsSvc.GetResults(r.Context(), userID, attemptID)
	if err != nil {
		writeResultsError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, results)
}

// writeResultsError separates "go complete an assessment" from "the backend
// hiccuped, retry". The client shows guidance for the former and a retry
// button for the latter.
func writeResultsError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNoCompletedAssessment):
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"error":     "no completed assessment found",
			"guidance":  "Complete the assessment to see your results.",
			"retryable": false,
		})
	case errors.Is(err, context.DeadlineExceeded):
		writeJSON(w, http.StatusGatewayTimeout, map[string]interface{}{
			"error":     "results took too long to load",
			"retryable": true,
		})
	default:
		writeJSON(w, http.StatusBadGateway, map[string]interface{}{
			"error":     "results temporarily unavailable",
			"retryable": true,
		})
	}
}
