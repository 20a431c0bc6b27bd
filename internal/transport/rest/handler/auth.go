package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"coachassess/internal/model"
	"coachassess/internal/service"
)

// AuthHandler handles the entry gate
type AuthHandler struct {
	authSvc *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Enter handles POST /v1/auth/enter
func (h *AuthHandler) Enter(w http.ResponseWriter, r *http.Request) {
	var req model.EnterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.authSvc.Enter(req.Email, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			// Validation failure, caught before anything hits the backend
			writeError(w, http.StatusBadRequest, "please enter a valid email address")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
