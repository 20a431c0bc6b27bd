package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"coachassess/internal/assessment"
	"coachassess/internal/service"
	"coachassess/internal/transport/rest/middleware"
)

// AssessmentHandler handles the live assessment flow and attempt history
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// AnswerRequest is the request body for selecting an answer
type AnswerRequest struct {
	Value int `json:"value"`
}

// Current handles GET /v1/assessment/current: the current question plus
// progression state, creating or resuming the attempt as needed
func (h *AssessmentHandler) Current(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	question, progress, err := h.assessmentSvc.CurrentQuestion(r.Context(), userID)
	if err != nil {
		writeAssessmentError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"question": question,
		"progress": progress,
		"done":     question == nil,
	})
}

// Answer handles PUT /v1/assessment/answer: in-memory selection only
func (h *AssessmentHandler) Answer(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	progress, err := h.assessmentSvc.SelectAnswer(r.Context(), userID, req.Value)
	if err != nil {
		writeAssessmentError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"progress": progress})
}

// Next handles POST /v1/assessment/next: confirm answer and advance
func (h *AssessmentHandler) Next(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	progress, err := h.assessmentSvc.Next(r.Context(), userID)
	if err != nil {
		writeAssessmentError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"progress": progress})
}

// Previous handles POST /v1/assessment/previous
func (h *AssessmentHandler) Previous(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	progress, err := h.assessmentSvc.Previous(r.Context(), userID)
	if err != nil {
		writeAssessmentError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"progress": progress})
}

// History handles GET /v1/attempts
func (h *AssessmentHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	attempts, err := h.assessmentSvc.ListAttempts(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusBadGateway, "history temporarily unavailable, please retry")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"attempts": attempts})
}

// Delete handles DELETE /v1/attempts/{attemptId}
func (h *AssessmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	attemptID := mux.Vars(r)["attemptId"]

	if err := h.assessmentSvc.DeleteAttempt(r.Context(), userID, attemptID); err != nil {
		if errors.Is(err, service.ErrAttemptNotFound) {
			writeError(w, http.StatusNotFound, "attempt not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeAssessmentError maps session errors onto HTTP statuses
func writeAssessmentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, assessment.ErrInvalidValue):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, assessment.ErrUnanswered):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, assessment.ErrAtFirstQuestion):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, assessment.ErrCompleted):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, assessment.ErrNoQuestions):
		writeError(w, http.StatusNotFound, "no questions found, seed the catalog first")
	default:
		writeError(w, http.StatusBadGateway, "temporarily unavailable, please retry")
	}
}
