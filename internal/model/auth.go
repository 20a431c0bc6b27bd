package model

import "github.com/golang-jwt/jwt/v5"

// ParticipantClaims is the JWT payload for an authenticated participant
type ParticipantClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// EnterRequest is the entry-gate request body
type EnterRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// EnterResponse is returned after a successful entry
type EnterResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
